package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sagarc03/drills/clientcli"
	"github.com/spf13/cobra"
)

var greetCmd = &cobra.Command{
	Use:   "greet <name> <race>",
	Short: "Ask the server for a greeting",
	Example: `  drills-cli greet Aragorn Human
  drills-cli greet --json Gimli Dwarf`,
	Args: cobra.ExactArgs(2),
	RunE: runGreet,
}

var sumCmd = &cobra.Command{
	Use:   "sum <a> <b>",
	Short: "Add two numbers on the server",
	Example: `  drills-cli sum 2 3
  drills-cli sum -q -- -1.5 4`,
	Args: cobra.ExactArgs(2),
	RunE: runSum,
}

var cipherCmd = &cobra.Command{
	Use:   "cipher <text>",
	Short: "Caesar-shift text on the server",
	Long: `Caesar-shift text on the server.

Letters are upper-cased and rotated by --shift positions. Anything that is
not an ASCII letter passes through unchanged. Use a negative shift to decode.`,
	Example: `  drills-cli cipher --shift 3 "hello world"
  drills-cli cipher --shift -3 KHOOR`,
	Args: cobra.ExactArgs(1),
	RunE: runCipher,
}

var lottoCmd = &cobra.Command{
	Use:   "lotto <n1> <n2> <n3> <n4> <n5> <n6>",
	Short: "Play the lottery with six numbers from 1 to 20",
	Args:  cobra.ExactArgs(6),
	RunE:  runLotto,
}

var echoCmd = &cobra.Command{
	Use:   "echo",
	Short: "Show what the server saw of the request",
	Args:  cobra.NoArgs,
	RunE:  runEcho,
}

var cipherShift int

func init() {
	cipherCmd.Flags().IntVarP(&cipherShift, "shift", "s", 3, "number of positions to shift")
}

func runGreet(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	text, err := client.Greet(cmd.Context(), clientcli.GreetOptions{Name: args[0], Race: args[1]})
	if err != nil {
		return reportError(err)
	}
	return getFormatter().FormatText(os.Stdout, text)
}

func runSum(cmd *cobra.Command, args []string) error {
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("a must be a number: %s", args[0])
	}
	b, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("b must be a number: %s", args[1])
	}

	client, err := getClient()
	if err != nil {
		return err
	}

	result, err := client.Sum(cmd.Context(), clientcli.SumOptions{A: a, B: b})
	if err != nil {
		return reportError(err)
	}
	return getFormatter().FormatSum(os.Stdout, result)
}

func runCipher(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	result, err := client.Cipher(cmd.Context(), clientcli.CipherOptions{Text: args[0], Shift: cipherShift})
	if err != nil {
		return reportError(err)
	}
	return getFormatter().FormatCipher(os.Stdout, result)
}

func runLotto(cmd *cobra.Command, args []string) error {
	numbers := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("not an integer: %s", arg)
		}
		numbers = append(numbers, n)
	}

	client, err := getClient()
	if err != nil {
		return err
	}

	result, err := client.Lotto(cmd.Context(), clientcli.LottoOptions{Numbers: numbers})
	if err != nil {
		return reportError(err)
	}
	return getFormatter().FormatLotto(os.Stdout, result)
}

func runEcho(cmd *cobra.Command, _ []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	text, err := client.Echo(cmd.Context())
	if err != nil {
		return reportError(err)
	}
	return getFormatter().FormatText(os.Stdout, text)
}
