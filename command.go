package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/MixinNetwork/fractional/common"
	"github.com/MixinNetwork/fractional/config"
	"github.com/MixinNetwork/fractional/logger"
	"github.com/urfave/cli/v2"
)

var custom *config.Custom

func setupCmd(c *cli.Context) error {
	var err error
	if file := c.String("config"); file != "" {
		custom, err = config.Initialize(file)
	} else {
		custom = config.Default()
	}
	if err != nil {
		return err
	}
	if c.IsSet("log") {
		custom.Log.Level = c.Int("log")
	}
	if c.IsSet("filter") {
		custom.Log.Filter = c.String("filter")
	}

	if c.App.ErrWriter != nil {
		logger.SetOutput(c.App.ErrWriter)
	}
	logger.SetLevel(custom.Log.Level)
	logger.SetLimiter(custom.Log.Limiter)
	return logger.SetFilter(custom.Log.Filter)
}

func demoCmd(c *cli.Context) error {
	fractional, err := common.NewRational(1, 3)
	if err != nil {
		return err
	}
	fractional2, err := common.NewRational(2, 6)
	if err != nil {
		return err
	}
	logger.Verbosef("reduce %s", fractional2)
	fractional2.Reduce()

	fmt.Fprintln(c.App.Writer, fractional.Float64())
	fmt.Fprintln(c.App.Writer, fractional2.Numerator())
	fmt.Fprintln(c.App.Writer, fractional2.Denominator())
	return nil
}

func reduceCmd(c *cli.Context) error {
	x, err := parseLeftOperand(c)
	if err != nil {
		return err
	}
	v := x.Reduced()
	logger.Verbosef("reduce %s to %s", x, v)
	printRational(c, v)
	return nil
}

func addCmd(c *cli.Context) error {
	return arithmeticCmd(c, "add", common.Rational.Add)
}

func subtractCmd(c *cli.Context) error {
	return arithmeticCmd(c, "subtract", common.Rational.Sub)
}

func multiplyCmd(c *cli.Context) error {
	return arithmeticCmd(c, "multiply", common.Rational.Mul)
}

func divideCmd(c *cli.Context) error {
	return arithmeticCmd(c, "divide", common.Rational.Div)
}

func arithmeticCmd(c *cli.Context, name string, op func(common.Rational, common.Operand) (common.Rational, error)) error {
	x, err := parseLeftOperand(c)
	if err != nil {
		return err
	}
	y, err := parseRightOperand(c)
	if err != nil {
		return err
	}
	r, err := common.ToRational(y)
	if err != nil {
		return err
	}
	v, err := op(x, r)
	if err != nil {
		logger.Errorf("%s %s %s: %s", name, x, r, err)
		return err
	}
	logger.Verbosef("%s %s %s = %s", name, x, r, v)
	printRational(c, v)
	return nil
}

func compareCmd(c *cli.Context) error {
	x, err := parseLeftOperand(c)
	if err != nil {
		return err
	}
	y, err := parseRightOperand(c)
	if err != nil {
		return err
	}
	r, err := common.ToRational(y)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "equal:\t%t\n", x.Equal(r))
	fmt.Fprintf(c.App.Writer, "cmp:\t%d\n", x.Cmp(r))
	return nil
}

func encodeCmd(c *cli.Context) error {
	x, err := parseLeftOperand(c)
	if err != nil {
		return err
	}
	data, err := json.Marshal(x)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "msgpack:\t%s\n", hex.EncodeToString(common.MsgpackMarshalPanic(x)))
	fmt.Fprintf(c.App.Writer, "json:\t%s\n", string(data))
	return nil
}

func decodeCmd(c *cli.Context) error {
	raw, err := hex.DecodeString(c.String("raw"))
	if err != nil {
		return err
	}
	var x common.Rational
	err = common.MsgpackUnmarshal(raw, &x)
	if err != nil {
		return err
	}
	printRational(c, x)
	return nil
}

func parseLeftOperand(c *cli.Context) (common.Rational, error) {
	return common.NewRational(c.Int64("xn"), c.Int64("xd"))
}

func parseRightOperand(c *cli.Context) (common.Operand, error) {
	if !c.IsSet("yd") {
		return common.Int(c.Int64("yn")), nil
	}
	return common.NewRational(c.Int64("yn"), c.Int64("yd"))
}

func printRational(c *cli.Context, r common.Rational) {
	if custom != nil && custom.Display.Decimal {
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", r, r.StringFixed(custom.Display.Precision))
		return
	}
	fmt.Fprintln(c.App.Writer, r)
}
