package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gitlab.com/gomidi/midi/writer"
	driver "gitlab.com/gomidi/rtmididrv"
)

const (
	appName    = "Scalesmith"
	fileExt    = ".ssc"
	configPath = "config"
)

const helpText = `commands:
  tonic <hz|mNN>        set the tonic frequency, or a midi note like m60
  add <ratio>           add a degree: 3/2, 1.25, 2^(7/12)
  del <index>           delete the degree at an index from "show"
  drag <index> <ratio>  move a degree, snapping toward just ratios
  clear                 remove all degrees except 1/1 and 2/1
  harmonic <n>          replace the scale with harmonics n+1 .. 2n
  edo <n>               replace the scale with n equal divisions
  maxden <n>            set the max denominator for snapping and labels
  sel <index>           toggle selection of a degree for chord playing
  show                  list degrees, gaps, and frequencies
  save <path>           save the scale (` + fileExt + `)
  load <path>           load a saved scale
  export <fmt> <path>   export as scl, kbm, tun, or mid
  play                  play the scale on the midi output
  chord                 play the selected degrees together
  quit                  exit`

func must(err error) {
	if err != nil {
		panic(err.Error())
	}
}

func main() {
	settings := loadSettings(func(s string) { println(s) })

	drv, err := driver.New()
	must(err)
	defer drv.Close()

	var wr writer.ChannelWriter
	if n := settings.MidiOutPortNumber; n >= 0 {
		outs, err := drv.Outs()
		must(err)
		if n < len(outs) {
			out := outs[n]
			must(out.Open())
			defer out.Close()
			wr = writer.New(out)
		} else {
			fmt.Printf("MIDI output port index %d out of range [%d, %d].\n",
				n, 0, len(outs))
		}
	}
	if wr == nil {
		wr = writer.New(io.Discard) // dummy output
	}

	s := newScale()
	if err := s.setTonic(settings.DefaultTonic); err != nil {
		fmt.Println(err)
	}
	cands := &candidateSet{}

	fmt.Printf("%s. Type \"help\" for a list of commands.\n", appName)
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		if !runCommand(strings.Fields(scanner.Text()), s, cands, settings, wr) {
			break
		}
		fmt.Print("> ")
	}
}

// dispatch one command line, returning false if the program should exit
func runCommand(args []string, s *scale, cands *candidateSet, st *settings,
	wr writer.ChannelWriter) bool {
	if len(args) == 0 {
		return true
	}
	switch args[0] {
	case "help":
		fmt.Println(helpText)
	case "tonic":
		if len(args) < 2 {
			fmt.Println("usage: tonic <hz|mNN>")
			break
		}
		freq, err := parseTonic(args[1])
		if err == nil {
			err = s.setTonic(freq)
		}
		printError(err)
	case "add":
		if len(args) < 2 {
			fmt.Println("usage: add <ratio>")
			break
		}
		printError(s.insertInterval(args[1]))
	case "del":
		if sd := degreeArg(args, s); sd != nil {
			printError(s.deleteInterval(sd))
		}
	case "drag":
		sd := degreeArg(args, s)
		if sd == nil {
			break
		}
		if len(args) < 3 {
			fmt.Println("usage: drag <index> <ratio>")
			break
		}
		raw, err := parseRatio(args[2])
		if err != nil {
			fmt.Println(err)
			break
		}
		s.dragInterval(sd, raw, st.SnapCents, cands.get(st.MaxDenominator),
			st.MaxDenominator)
	case "clear":
		s.clearAll()
	case "harmonic":
		if n, ok := intArg(args, 1); ok {
			s.replaceWith(harmonicSeries(n))
		}
	case "edo":
		if n, ok := intArg(args, 1); ok {
			s.replaceWith(equalDivision(n))
		}
	case "maxden":
		if n, ok := intArg(args, 1); ok {
			if n < 1 {
				fmt.Println("max denominator must be at least 1")
			} else {
				st.MaxDenominator = n
			}
		}
	case "sel":
		if sd := degreeArg(args, s); sd != nil {
			sd.Selected = !sd.Selected
		}
	case "show":
		printScale(s, st.MaxDenominator)
	case "save":
		if len(args) < 2 {
			fmt.Println("usage: save <path>")
			break
		}
		printError(saveScale(s, addSuffixIfMissing(args[1], fileExt)))
	case "load":
		if len(args) < 2 {
			fmt.Println("usage: load <path>")
			break
		}
		printError(loadScale(s, addSuffixIfMissing(args[1], fileExt)))
	case "export":
		if len(args) < 3 {
			fmt.Println("usage: export <scl|kbm|tun|mid> <path>")
			break
		}
		printError(exportScale(s, st, args[1], args[2]))
	case "play":
		playScale(s, wr, float64(st.BeatsPerMinute), true)
	case "chord":
		playChord(s, wr, float64(st.BeatsPerMinute))
	case "quit", "exit":
		return false
	default:
		fmt.Printf("unknown command: %s\n", args[0])
	}
	return true
}

// print an error if non-nil
func printError(err error) {
	if err != nil {
		fmt.Println(err)
	}
}

// parse a tonic argument: a frequency in Hz or a midi note like m60
func parseTonic(s string) (float64, error) {
	if strings.HasPrefix(s, "m") {
		note, err := strconv.Atoi(s[1:])
		if err != nil {
			return 0, fmt.Errorf("invalid midi note: %q", s)
		}
		return midiToFreq(note), nil
	}
	freq, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frequency: %q", s)
	}
	return freq, nil
}

// return the degree named by an index argument, printing a message if the
// argument is missing or out of range
func degreeArg(args []string, s *scale) *scaleDegree {
	i, ok := intArg(args, 1)
	if !ok {
		return nil
	}
	if i < 0 || i >= len(s.Degrees) {
		fmt.Printf("index must be in the range [0, %d].\n", len(s.Degrees)-1)
		return nil
	}
	return s.Degrees[i]
}

// parse an integer argument, printing a message on failure
func intArg(args []string, i int) (int, bool) {
	if i >= len(args) {
		fmt.Println("missing argument")
		return 0, false
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		fmt.Println(err)
		return 0, false
	}
	return n, true
}

// print the degree table: index, label, ratio, cents, frequency, and the
// gap between adjacent degrees as a best-fit fraction
func printScale(s *scale, maxDen int) {
	fmt.Printf("tonic: %.2f Hz\n", s.Tonic)
	for i, sd := range s.Degrees {
		sel := " "
		if sd.Selected {
			sel = "*"
		}
		fmt.Printf("%3d %s %-10s %.6f  %8.2fc  %9.4g Hz\n",
			i, sel, sd.Label, sd.Ratio, cents(sd.Ratio, 1), s.frequency(sd))
		if i < len(s.Degrees)-1 {
			gap := s.Degrees[i+1].Ratio / sd.Ratio
			fmt.Printf("        %s\n", ratioLabel(gap, maxDen))
		}
	}
}

// write the scale to a file
func saveScale(s *scale, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.write(f)
}

// read the scale from a file
func loadScale(s *scale, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.read(f)
}

// write the scale in an export format
func exportScale(s *scale, st *settings, format, path string) error {
	switch format {
	case "scl", "kbm", "tun":
	case "mid":
		return exportSMF(s, addSuffixIfMissing(path, ".mid"),
			float64(st.BeatsPerMinute))
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}
	f, err := os.Create(addSuffixIfMissing(path, "."+format))
	if err != nil {
		return err
	}
	defer f.Close()
	name := strings.TrimSuffix(baseName(path), "."+format)
	switch format {
	case "scl":
		return s.writeScl(f, name)
	case "kbm":
		return s.writeKbm(f, st.ExportBaseNote, st.ExportLowNote, st.ExportHighNote)
	default:
		return s.writeTun(f, name, st.ExportBaseNote)
	}
}

// final path element without directories
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// read records from a CSV file
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.Comment = '#'
	return r.ReadAll()
}

// return base+suffix if base does not already end with suffix, otherwise
// return base. NOT case-sensitive.
func addSuffixIfMissing(base, suffix string) string {
	if !strings.HasSuffix(strings.ToLower(base), strings.ToLower(suffix)) {
		return base + suffix
	}
	return base
}
