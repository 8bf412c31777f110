package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/storage"
	"github.com/urfave/cli/v2"
)

func calcCmd(c *cli.Context) error {
	out, err := evaluate(c.String("a"), c.String("b"), c.String("op"))
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func evaluate(left, right, op string) (string, error) {
	a, err := common.ParseFraction(left)
	if err != nil {
		return "", err
	}
	switch op {
	case "neg":
		f, err := a.Neg()
		return formatFraction(f), err
	case "inv":
		f, err := a.Inv()
		return formatFraction(f), err
	}

	b, err := common.ParseFraction(right)
	if err != nil {
		return "", err
	}
	var f common.Fraction
	switch op {
	case "+":
		f, err = a.Add(b)
	case "-":
		f, err = a.Sub(b)
	case "*":
		f, err = a.Mul(b)
	case "/":
		f, err = a.Div(b)
	case "==":
		return fmt.Sprint(a.Equal(b)), nil
	case "!=":
		return fmt.Sprint(a.NotEqual(b)), nil
	case "<":
		return fmt.Sprint(a.Less(b)), nil
	case "<=":
		return fmt.Sprint(a.LessOrEqual(b)), nil
	case ">":
		return fmt.Sprint(a.Greater(b)), nil
	case ">=":
		return fmt.Sprint(a.GreaterOrEqual(b)), nil
	default:
		return "", fmt.Errorf("invalid operator %s", op)
	}
	if err != nil {
		return "", err
	}
	return formatFraction(f), nil
}

func formatFraction(f common.Fraction) string {
	return fmt.Sprintf("%s\t%s", f, f.Decimal())
}

func fromFloatCmd(c *cli.Context) error {
	f, err := common.NewFractionFromDecimalString(c.String("value"))
	if err != nil {
		return err
	}
	fmt.Println(formatFraction(f))
	return nil
}

func scanCmd(c *cli.Context) error {
	return scanFractions(os.Stdin, os.Stdout)
}

// scanFractions prints every fraction of r in canonical form, one per line.
// Tokens that are not fractions are reported and skipped.
func scanFractions(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	dec := common.NewDecoder(bytes.NewReader(data))
	for {
		var f common.Fraction
		err := dec.Decode(&f)
		switch {
		case err == io.EOF:
			return nil
		case errors.Is(err, common.ErrFormatMismatch):
			dec.Clear()
			tok, err := dec.Skip()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "mismatch\t%s\n", tok)
		case err != nil:
			fmt.Fprintf(w, "error\t%s\n", err)
		default:
			fmt.Fprintln(w, f)
		}
	}
}

func putCmd(c *cli.Context) error {
	f, err := common.ParseFraction(c.String("value"))
	if err != nil {
		return err
	}
	store, err := openDataStore(c.String("dir"))
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := store.WriteFraction(c.String("name"), f)
	if err != nil {
		return err
	}
	fmt.Printf("%s\t%s\n", r.Name, r.Value)
	return nil
}

func getCmd(c *cli.Context) error {
	store, err := openDataStore(c.String("dir"))
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := store.ReadFraction(c.String("name"))
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("fraction %s not found", c.String("name"))
	}
	fmt.Printf("%s\t%s\n", r.Name, formatFraction(r.Value))
	return nil
}

func removeCmd(c *cli.Context) error {
	store, err := openDataStore(c.String("dir"))
	if err != nil {
		return err
	}
	defer store.Close()

	return store.RemoveFraction(c.String("name"))
}

func listCmd(c *cli.Context) error {
	store, err := openDataStore(c.String("dir"))
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.ListFractions(c.String("prefix"))
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Printf("%s\t%s\n", r.Name, formatFraction(r.Value))
	}
	return nil
}

func loadConfig(dir string) (*config.Custom, error) {
	if dir == "" {
		return config.Default(), nil
	}
	file := filepath.Join(dir, "config.toml")
	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		return config.Default(), nil
	} else if err != nil {
		return nil, err
	}
	return config.Initialize(file)
}

func openStore(custom *config.Custom, dir string) (*storage.BadgerStore, error) {
	if dir == "" {
		custom.Storage.InMemory = true
	}
	return storage.NewBadgerStore(custom, dir)
}

func openDataStore(dir string) (*storage.BadgerStore, error) {
	custom, err := loadConfig(dir)
	if err != nil {
		return nil, err
	}
	return openStore(custom, dir)
}
