package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MixinNetwork/fractional/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(args ...string) (string, string, error) {
	var out, log bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &log
	err := app.Run(append([]string{"fractional"}, args...))
	return out.String(), log.String(), err
}

func TestDemo(t *testing.T) {
	assert := assert.New(t)

	out, _, err := runApp("demo")
	assert.Nil(err)
	assert.Equal("0.3333333333333333\n1\n3\n", out)
}

func TestArithmeticCommands(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	out, _, err := runApp("reduce", "--xn", "2", "--xd", "6")
	require.Nil(err)
	assert.Equal("1/3\n", out)

	out, _, err = runApp("add", "--xn", "1", "--xd", "2", "--yn", "1", "--yd", "3")
	require.Nil(err)
	assert.Equal("5/6\n", out)

	out, _, err = runApp("subtract", "--xn", "1", "--xd", "3", "--yn", "1", "--yd", "2")
	require.Nil(err)
	assert.Equal("-1/6\n", out)

	out, _, err = runApp("multiply", "--xn", "1", "--xd", "2", "--yn", "2", "--yd", "3")
	require.Nil(err)
	assert.Equal("1/3\n", out)

	out, _, err = runApp("divide", "--xn", "3", "--xd", "4", "--yn", "3", "--yd", "4")
	require.Nil(err)
	assert.Equal("1/1\n", out)

	out, _, err = runApp("add", "--xn", "1", "--xd", "2", "--yn", "2")
	require.Nil(err)
	assert.Equal("5/2\n", out)

	out, _, err = runApp("compare", "--xn", "0", "--xd", "5", "--yn", "0", "--yd", "7")
	require.Nil(err)
	assert.Equal("equal:\ttrue\ncmp:\t0\n", out)

	_, log, err := runApp("divide", "--xn", "1", "--xd", "2", "--yn", "0")
	assert.True(errors.Is(err, common.ErrInvalidArgument))
	assert.Contains(log, "divide 1/2 0/1")

	_, _, err = runApp("reduce", "--xn", "1", "--xd", "0")
	assert.True(errors.Is(err, common.ErrInvalidArgument))
}

func TestEncodeCommands(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	x, err := common.NewRational(2, 6)
	require.Nil(err)
	out, _, err := runApp("encode", "--xn", "2", "--xd", "6")
	require.Nil(err)
	assert.Contains(out, "msgpack:\t"+hex.EncodeToString(common.MsgpackMarshalPanic(x))+"\n")
	assert.Contains(out, "json:\t{\"numerator\":2,\"denominator\":6}\n")

	x, err = common.NewRational(-2, 6)
	require.Nil(err)
	out, _, err = runApp("decode", "--raw", hex.EncodeToString(common.MsgpackMarshalPanic(x)))
	require.Nil(err)
	assert.Equal("-2/6\n", out)

	_, _, err = runApp("decode", "--raw", "zz")
	assert.NotNil(err)
}

func TestConfigFlag(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	file := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(file, []byte("[display]\nprecision = 4\ndecimal = true\n[log]\nlevel = 3\n"), 0644)
	require.Nil(err)

	out, log, err := runApp("--config", file, "reduce", "--xn", "2", "--xd", "6")
	require.Nil(err)
	assert.Equal("1/3\t0.3333\n", out)
	assert.Contains(log, "reduce 2/6 to 1/3")

	out, log, err = runApp("--config", file, "--log", "1", "reduce", "--xn", "2", "--xd", "6")
	require.Nil(err)
	assert.Equal("1/3\t0.3333\n", out)
	assert.Equal("", log)

	err = os.WriteFile(file, []byte("[display]\nprecision = 0\ndecimal = true\n"), 0644)
	require.Nil(err)
	out, _, err = runApp("--config", file, "divide", "--xn", "7", "--xd", "2", "--yn", "1")
	require.Nil(err)
	assert.Equal("7/2\t4\n", out)

	_, _, err = runApp("--filter", "(unclosed", "demo")
	assert.NotNil(err)
}
