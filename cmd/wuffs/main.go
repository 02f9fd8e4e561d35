package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/pkasting/wuffs/transform"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("wuffs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		op          = fs.String("op", "", "Operation: "+strings.Join(allOps, ", "))
		url         = fs.Bool("url", false, "Use the URL-safe base64 alphabet")
		pad         = fs.Bool("pad", false, "Emit and accept base64 padding")
		bufSize     = fs.Int("buf", transform.DefaultBufferSize, "Stream buffer size in bytes")
		notation    = fs.String("notation", "adaptive", "Float notation: adaptive, exponent-absent, exponent-present")
		precision   = fs.Int("precision", -1, "Float precision (-1 for just enough digits)")
		plus        = fs.Bool("plus", false, "Render a leading '+' on non-negative numbers")
		comma       = fs.Bool("comma", false, "Render ',' as the decimal separator")
		configPath  = fs.String("config", "", "YAML job file (flags override its values)")
		schema      = fs.Bool("schema", false, "Print the job file JSON Schema and exit")
		verbose     = fs.Bool("v", false, "Verbose logging")
		interactive = fs.Bool("i", false, "Interactive mode with TUI")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: wuffs -op <op> [flags] [values...]  < input")
		fmt.Fprintln(stderr, "       wuffs -config job.yaml [values...]")
		fmt.Fprintln(stderr, "       wuffs -i  (interactive mode)")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *schema {
		b, err := jobSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "%s\n", b)
		return err
	}

	job := defaultJob()
	if *configPath != "" {
		var err error
		if job, err = loadJob(*configPath); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "op":
			job.Op = *op
		case "url":
			job.URLAlphabet = *url
		case "pad":
			job.Padding = *pad
		case "buf":
			job.BufferSize = *bufSize
		case "notation":
			job.Notation = *notation
		case "precision":
			job.Precision = *precision
		case "plus":
			job.LeadingPlus = *plus
		case "comma":
			job.DecimalComma = *comma
		case "v":
			job.Verbose = *verbose
		}
	})

	if *interactive && job.Op == "" {
		job.Op = allOps[0]
	}
	if job.Op == "" {
		fs.Usage()
		return fmt.Errorf("no operation given")
	}
	if err := job.validate(); err != nil {
		return err
	}

	log, err := newLogger(job.Verbose)
	if err != nil {
		return err
	}
	defer log.Sync()
	transform.SetLogger(log)
	log.Debug("job", zap.String("op", job.Op), zap.Int("buffer_size", job.BufferSize))

	if *interactive {
		return runInteractive(job)
	}
	return execute(context.Background(), job, fs.Args(), stdin, stdout)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// execute runs job over the positional values, or over stdin when there
// are none. Transcoding ops stream stdin; value ops read one value per
// line.
func execute(ctx context.Context, job *Job, values []string, stdin io.Reader, stdout io.Writer) error {
	if t := job.transformer(); t != nil && len(values) == 0 {
		s := &transform.Stream{T: t, BufferSize: job.BufferSize}
		if _, err := s.Copy(ctx, stdout, stdin); err != nil {
			return err
		}
		if isTerminal(stdout) {
			_, err := io.WriteString(stdout, "\n")
			return err
		}
		return nil
	}

	if len(values) > 0 {
		for _, v := range values {
			if err := writeResult(stdout, job, []byte(v)); err != nil {
				return err
			}
		}
		return nil
	}

	if job.Op == opUTF8Check {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return writeResult(stdout, job, data)
	}

	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		line := bytes.TrimRight(sc.Bytes(), "\r")
		if len(line) == 0 {
			continue
		}
		if err := writeResult(stdout, job, line); err != nil {
			return err
		}
	}
	return sc.Err()
}

func writeResult(w io.Writer, job *Job, input []byte) error {
	out, err := apply(job, input)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
