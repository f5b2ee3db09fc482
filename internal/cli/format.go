package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aakb/rasid-api/pkg/gujarati"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(numeralsCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(translitCmd)

	numeralsCmd.Flags().Bool("latin", false, "Convert Gujarati digits back to ASCII")
	wordsCmd.Flags().StringP("lang", "l", "gu", "Output language: en or gu")
	wordsCmd.Flags().Bool("plain", false, "Spell the number without amount overrides")
}

var numeralsCmd = &cobra.Command{
	Use:   "numerals VALUE...",
	Short: "Write digits in Gujarati script",
	Long: `Replace every ASCII digit with its Gujarati digit. Separators such as
"/" and "," are kept, so dates and grouped numbers convert as typed.`,
	Example: `  rasidctl numerals 1100
  rasidctl numerals 05/03/2024
  rasidctl numerals --latin ૧૧૦૦`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		latin, _ := cmd.Flags().GetBool("latin")
		for _, arg := range args {
			if latin {
				fmt.Fprintln(cmd.OutOrStdout(), gujarati.FromGujaratiDigits(arg))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), gujarati.ToGujaratiDigits(arg))
			}
		}
		return nil
	},
}

var wordsCmd = &cobra.Command{
	Use:   "words AMOUNT",
	Short: "Spell an amount on the Indian scale",
	Long: `Spell a whole-rupee amount in English or Gujarati using hundred,
thousand, lakh and crore. Amounts with a customary phrase, such as 1100 and
5100, use it unless --plain is given.`,
	Example: `  rasidctl words 1100
  rasidctl words 250000 --lang en`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseInt(gujarati.FromGujaratiDigits(strings.TrimSpace(args[0])), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[0])
		}
		langFlag, _ := cmd.Flags().GetString("lang")
		lang, err := parseLanguage(langFlag)
		if err != nil {
			return err
		}

		plain, _ := cmd.Flags().GetBool("plain")
		if plain {
			fmt.Fprintln(cmd.OutOrStdout(), gujarati.NumberToWords(amount, lang))
			return nil
		}
		set, err := overrides()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), gujarati.AmountToWords(amount, lang, set.For(lang)))
		return nil
	},
}

var translitCmd = &cobra.Command{
	Use:   "translit NAME",
	Short: "Write a Latin-script name in Gujarati",
	Long: `Transliterate a name word by word. Known names come from the built-in
dictionary, extended by --names; other words use phonetic rules. Text that
is already Gujarati is kept.`,
	Example: `  rasidctl translit "Ramesh Patel"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := transliterator()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Transliterate(strings.Join(args, " ")))
		return nil
	},
}
