// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/qur/lib/cli"
	"github.com/bureau-foundation/qur/lib/clock"
	"github.com/bureau-foundation/qur/lib/config"
	"github.com/bureau-foundation/qur/lib/frame"
	"github.com/bureau-foundation/qur/lib/lifehash"
	"github.com/bureau-foundation/qur/lib/qrcode"
	"github.com/bureau-foundation/qur/lib/showui"
	"github.com/bureau-foundation/qur/lib/ur"
	"github.com/bureau-foundation/qur/lib/version"
)

// maxSinglePartLength is the QR byte capacity bound for one part:
// version 40 at recovery level Low holds 2956 hex digits worth of
// data, halved for bytewords and less the "ur:bytes/" framing.
const maxSinglePartLength = 2956/2 - 13

// options is the resolved flag set: built-in defaults overlaid by the
// config file, overlaid by explicit flags.
type options struct {
	multipart    bool
	length       int
	fragment     int
	extra        int
	qrSize       int
	lifehashSize int
	fps          int
	seed         string
	export       string
	configPath   string
	verbose      bool
}

func main() {
	err := run(os.Args[1:])
	code := cli.ExitCodeFor(err)
	if err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	os.Exit(code)
}

func run(arguments []string) error {
	// Handle --version before flag parsing to match other Bureau
	// binaries.
	if len(arguments) > 0 && arguments[0] == "--version" {
		version.Print("qur")
		return nil
	}

	opts, flagSet, err := parseFlags(arguments)
	if err != nil {
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if err := applyConfig(opts, flagSet); err != nil {
		return err
	}
	if err := validate(opts); err != nil {
		return err
	}

	logger := newLogger(opts)

	message := generateMessage(clock.Real(), opts.seed, opts.length)
	wrapped, err := ur.NewBytes(message)
	if err != nil {
		return cli.Internal("wrapping message: %w", err)
	}
	fingerprint := lifehash.Make(wrapped.Payload())
	logger.Debug("message generated",
		"bytes", opts.length, "ref", fingerprint.Ref(), "seeded", opts.seed != "")

	parts, err := encodeParts(wrapped, opts)
	if err != nil {
		return err
	}
	if err := verifyRoundTrip(parts, message); err != nil {
		return cli.Internal("round-trip verification failed: %w", err)
	}
	logger.Debug("parts encoded and verified", "parts", len(parts))

	codes := make([]qrcode.Code, 0, len(parts))
	for index, part := range parts {
		code, err := qrcode.Encode(part)
		if err != nil {
			return cli.Internal("part %d of %d: %w", index+1, len(parts), err)
		}
		codes = append(codes, code)
	}

	if opts.export != "" {
		return exportFrames(logger, fingerprint, codes, opts)
	}
	return present(fingerprint, codes, opts)
}

func parseFlags(arguments []string) (*options, *pflag.FlagSet, error) {
	opts := &options{}
	flagSet := pflag.NewFlagSet("qur", pflag.ContinueOnError)
	flagSet.BoolVarP(&opts.multipart, "multipart", "m", false, "encode as a multi-part (fountain-coded) UR")
	flagSet.IntVarP(&opts.length, "length", "l", 100, "generated message length in bytes")
	flagSet.IntVarP(&opts.fragment, "fragment", "f", 100, "maximum fragment length in bytes for multi-part URs")
	flagSet.IntVarP(&opts.extra, "extra", "e", 0, "extra fountain parts beyond the minimum")
	flagSet.IntVarP(&opts.qrSize, "size", "s", 256, "QR image size in pixels for PNG export")
	flagSet.IntVarP(&opts.fps, "fps", "t", 4, "animation rate in frames per second")
	flagSet.IntVar(&opts.lifehashSize, "lifehash-size", 128, "fingerprint image size in pixels for PNG export")
	flagSet.StringVar(&opts.seed, "seed", "", "deterministic message seed (default: time-seeded)")
	flagSet.StringVar(&opts.export, "export", "", "write PNG frames to this directory instead of running the viewer")
	flagSet.StringVar(&opts.configPath, "config", "", "YAML defaults file (also via "+config.EnvVar+")")
	flagSet.BoolVar(&opts.verbose, "verbose", false, "debug logging to stderr")
	flagSet.BoolP("help", "h", false, "show help")
	flagSet.SetOutput(os.Stderr)

	if err := flagSet.Parse(arguments); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return opts, flagSet, &cli.ExitError{Code: 0}
		}
		return nil, nil, cli.Validation("%w", err)
	}
	if remaining := flagSet.Args(); len(remaining) > 0 {
		return nil, nil, cli.Validation("unexpected argument: %s", remaining[0])
	}
	return opts, flagSet, nil
}

// applyConfig overlays config-file values onto every option the user
// did not set explicitly.
func applyConfig(opts *options, flagSet *pflag.FlagSet) error {
	path := config.Resolve(opts.configPath)
	if path == "" {
		return nil
	}
	loaded, err := config.Load(path)
	if err != nil {
		return cli.Validation("%w", err).
			WithHint("Check the file named by --config or " + config.EnvVar + ".")
	}

	overlay := func(flagName string, value *int, target *int) {
		if value != nil && !flagSet.Changed(flagName) {
			*target = *value
		}
	}
	overlay("length", loaded.Message.Length, &opts.length)
	overlay("fragment", loaded.Message.Fragment, &opts.fragment)
	overlay("extra", loaded.Message.Extra, &opts.extra)
	overlay("size", loaded.Render.QRSize, &opts.qrSize)
	overlay("lifehash-size", loaded.Render.LifehashSize, &opts.lifehashSize)
	overlay("fps", loaded.Display.FPS, &opts.fps)
	return nil
}

func validate(opts *options) error {
	positive := func(name string, value int) error {
		if value <= 0 {
			return cli.Validation("%s must be positive, got %d", name, value)
		}
		return nil
	}
	for _, check := range []struct {
		name  string
		value int
	}{
		{"message length (-l)", opts.length},
		{"fragment length (-f)", opts.fragment},
		{"QR size (-s)", opts.qrSize},
		{"lifehash size (--lifehash-size)", opts.lifehashSize},
		{"frame rate (-t)", opts.fps},
	} {
		if err := positive(check.name, check.value); err != nil {
			return err
		}
	}
	if opts.extra < 0 {
		return cli.Validation("extra part count (-e) must not be negative, got %d", opts.extra)
	}

	if !opts.multipart {
		if opts.length > maxSinglePartLength {
			return cli.Validation("message length %d exceeds the single-part maximum of %d bytes",
				opts.length, maxSinglePartLength).
				WithHint("Pass -m to split the message into multiple parts.")
		}
		return nil
	}
	if opts.fragment > maxSinglePartLength {
		return cli.Validation("fragment length %d exceeds the per-part maximum of %d bytes",
			opts.fragment, maxSinglePartLength)
	}
	if opts.length < opts.fragment {
		return cli.Validation("message length %d is shorter than the fragment length %d",
			opts.length, opts.fragment).
			WithHint("Drop -m for short messages, or lower -f.")
	}
	return nil
}

// newLogger builds the slog logger. Interactive runs only surface
// warnings (the alternate screen owns stdout); verbose export runs
// get human-readable debug logging.
func newLogger(opts *options) *slog.Logger {
	if opts.export != "" && opts.verbose {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: "15:04:05",
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// encodeParts produces the UR strings to display: one for single-part
// mode, seqLen plus extras for multi-part mode.
func encodeParts(wrapped ur.UR, opts *options) ([]string, error) {
	if !opts.multipart {
		return []string{ur.Encode(wrapped)}, nil
	}
	encoder, err := ur.NewEncoder(wrapped, opts.fragment)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	parts, err := encoder.Parts(encoder.SeqLen() + opts.extra)
	if err != nil {
		return nil, cli.Internal("%w", err)
	}
	return parts, nil
}

// verifyRoundTrip decodes the encoded parts and compares the result
// against the original message.
func verifyRoundTrip(parts []string, message []byte) error {
	decoder := ur.NewDecoder()
	for _, part := range parts {
		if err := decoder.Receive(part); err != nil {
			return err
		}
	}
	if !decoder.Done() {
		return fmt.Errorf("decoder incomplete after all %d parts", len(parts))
	}
	result, err := decoder.Result()
	if err != nil {
		return err
	}
	decoded, err := result.Bytes()
	if err != nil {
		return err
	}
	if len(decoded) != len(message) {
		return fmt.Errorf("decoded %d bytes, encoded %d", len(decoded), len(message))
	}
	for index := range decoded {
		if decoded[index] != message[index] {
			return fmt.Errorf("decoded message differs at byte %d", index)
		}
	}
	return nil
}

// exportFrames composites fingerprint and QR images in pixel space
// and writes one PNG per part.
func exportFrames(logger *slog.Logger, fingerprint lifehash.Fingerprint, codes []qrcode.Code, opts *options) error {
	fingerprintImage, err := fingerprint.Image(opts.lifehashSize)
	if err != nil {
		return cli.Internal("%w", err)
	}
	codeImages := make([]image.Image, 0, len(codes))
	for index, code := range codes {
		rendered, err := code.Image(opts.qrSize)
		if err != nil {
			return cli.Internal("part %d: %w", index+1, err)
		}
		codeImages = append(codeImages, rendered)
	}

	frames := frame.Compose(fingerprintImage, codeImages)
	paths, err := frame.ExportPNG(opts.export, frames)
	if err != nil {
		return cli.Internal("%w", err)
	}
	for _, path := range paths {
		logger.Debug("frame written", "path", path)
	}
	fmt.Printf("wrote %d frames to %s\n", len(paths), opts.export)
	return nil
}

// present runs the interactive viewer.
func present(fingerprint lifehash.Fingerprint, codes []qrcode.Code, opts *options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return cli.Validation("stdout is not a terminal").
			WithHint("Use --export <dir> to write PNG frames instead.")
	}
	model := showui.NewModel(fingerprint, codes, opts.fps)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return cli.Internal("%w", err)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `qur — animated UR/QR demo harness.

Generates a random byte message, encodes it as a UR (single-part, or
multi-part fountain-coded with -m), and cycles the parts as QR codes
in the terminal below a lifehash fingerprint of the message. Press
space to pause the cycle, the arrow keys to step while paused, and q
to quit.

Usage: qur [OPTION]...

%s`, flagSet.FlagUsages())
}
