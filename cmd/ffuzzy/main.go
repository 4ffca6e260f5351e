// Command ffuzzy compares, validates, and sorts ssdeep-style fuzzy hash
// digests. It never computes a digest from raw data: every digest it
// touches must already exist as text, read from the command line, a file,
// or standard input.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/cosmorse/ffuzzy"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

var rootCmd = &cobra.Command{
	Use:   "ffuzzy",
	Short: "compare, validate, and sort ssdeep fuzzy hash digests",
	Long:  "ffuzzy compares pre-existing ssdeep/libfuzzy digests. It does not hash files itself.",
}

func main() {
	rootCmd.AddCommand(compareCmd, validateCmd, sortCmd)
	rootCmd.SetUsageTemplate(`Usage: {{if .Runnable}}{{.UseLine}}{{end}} {{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Options:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// isTerminal reports whether fd is attached to a terminal by probing the
// real file descriptor via ioctl rather than pulling in an isatty library.
func isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// scoreColor returns an ANSI color escape for score when out is a terminal,
// or the empty string otherwise (so redirected output stays plain text).
func scoreColor(out *os.File, score int) (color, reset string) {
	if !isTerminal(out.Fd()) {
		return "", ""
	}
	switch {
	case score >= 70:
		return "\x1b[32m", "\x1b[0m" // green
	case score >= 30:
		return "\x1b[33m", "\x1b[0m" // yellow
	default:
		return "\x1b[31m", "\x1b[0m" // red
	}
}

var compareCmd = &cobra.Command{
	Use:   "compare <digest1> <digest2>",
	Short: "score the similarity of two digests",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score := ffuzzy.Compare(args[0], args[1])
		if score < 0 {
			return fmt.Errorf("ffuzzy: could not parse one or both digests")
		}
		color, reset := scoreColor(os.Stdout, score)
		fmt.Printf("%s%d%s\n", color, score, reset)
		return nil
	},
}

var (
	matchFile      string
	matchThreshold int
)

var matchCmd = &cobra.Command{
	Use:   "match <digest>...",
	Short: "compare digests against a file of labeled digests",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hashes, err := loadHashes(matchFile)
		if err != nil {
			return fmt.Errorf("ffuzzy: %w", err)
		}
		for _, arg := range args {
			for _, h := range hashes {
				score := ffuzzy.Compare(arg, h.hash)
				if score >= matchThreshold {
					color, reset := scoreColor(os.Stdout, score)
					fmt.Printf("%s matches %s (%s%d%s)\n", arg, h.path, color, score, reset)
				}
			}
		}
		return nil
	},
}

type hashInfo struct {
	hash string
	path string
}

// loadHashes reads "digest,path" lines, the format a file-hashing ssdeep
// tool writes one side of (digest,"path") and this tool reads back.
func loadHashes(path string) ([]hashInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var hashes []hashInfo
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, ",", 2)
		if len(parts) == 2 {
			hashes = append(hashes, hashInfo{hash: parts[0], path: strings.Trim(parts[1], "\"")})
		}
	}
	return hashes, scanner.Err()
}

var validateNatural bool

var validateCmd = &cobra.Command{
	Use:   "validate <digest>...",
	Short: "report whether each digest is well-formed",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bad := false
		for _, s := range args {
			d, err := ffuzzy.ParseDigest(s)
			switch {
			case err != nil:
				fmt.Printf("%s: invalid (%v)\n", s, err)
				bad = true
			case validateNatural && !d.IsNatural():
				fmt.Printf("%s: valid but not natural\n", s)
				bad = true
			default:
				fmt.Printf("%s: ok\n", s)
			}
		}
		if bad {
			os.Exit(1)
		}
	},
}

var sortNatural bool

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "read digests from standard input, one per line, and print them sorted by block size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var digests []ffuzzy.Digest
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			d, err := ffuzzy.ParseDigest(line)
			if err != nil {
				return fmt.Errorf("ffuzzy: %q: %w", line, err)
			}
			digests = append(digests, d)
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		if sortNatural {
			sort.Stable(ffuzzy.ByBlockSizeNatural(digests))
		} else {
			sort.Stable(ffuzzy.ByDigest(digests))
		}
		for _, d := range digests {
			fmt.Println(d.String())
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().StringVarP(&matchFile, "match", "m", "", "file of \"digest,path\" lines to compare against")
	matchCmd.MarkFlagRequired("match")
	matchCmd.Flags().IntVarP(&matchThreshold, "threshold", "t", 1, "minimum score to report")
	rootCmd.AddCommand(matchCmd)

	validateCmd.Flags().BoolVarP(&validateNatural, "natural", "n", false, "also require a natural block size and base64 buffer")
	sortCmd.Flags().BoolVarP(&sortNatural, "natural", "n", false, "rank natural block sizes first")
}
