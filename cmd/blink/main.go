package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vivien/blink/internal/blink1"
	"github.com/vivien/blink/internal/hid"
	"github.com/vivien/blink/internal/usbraw"
)

const usageLine = "Usage: blink [OPTIONS] COMMAND [FIELD...]"

const usageOptions = "Options:\n" +
	"\t-h\tprint this help message\n" +
	"\t-c\tlist defined colors\n" +
	"\t-l\tlist attached blink(1) devices\n" +
	"\t-d\tsend the report to the device instead of stdout\n" +
	"\t-v\tenable debug logging"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("blink", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printHelp(stderr) }

	help := fs.Bool("h", false, "print this help message")
	listColors := fs.Bool("c", false, "list defined colors")
	listDevices := fs.Bool("l", false, "list attached blink(1) devices")
	toDevice := fs.Bool("d", false, "send the report to the device instead of stdout")
	verbose := fs.Bool("v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	switch {
	case *help:
		printHelp(stdout)
		return 0
	case *listColors:
		for _, name := range blink1.ColorNames() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	case *listDevices:
		return listBlinks(stdout, stderr)
	}

	rest := fs.Args()
	if len(rest) == 0 || len(rest[0]) != 1 {
		fmt.Fprintln(stderr, "Put colors! Try 'blink -h' for more information.")
		return 1
	}

	report, err := blink1.Encode(rest[0][0], rest[1:])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	slog.Debug("encoded report", slog.String("report", blink1.ReportString(report)))

	if *toDevice {
		dev, err := openDevice()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer dev.Close()

		if err := sendReport(dev, report); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	n, err := stdout.Write(report)
	if err != nil {
		fmt.Fprintf(stderr, "write: %v\n", err)
		return 1
	}
	if n != len(report) {
		fmt.Fprintf(stderr, "write: short write (%d of %d bytes)\n", n, len(report))
		return 1
	}
	return 0
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, usageLine)
	fmt.Fprintln(w, usageOptions)
	fmt.Fprintln(w, "Commands:")
	for _, c := range blink1.Commands {
		fmt.Fprintf(w, "\t%c\t%s\n", c.Letter, c.Desc)
	}
}

func listBlinks(stdout, stderr io.Writer) int {
	mgr, err := hid.NewManager()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	infos, err := mgr.List(blink1.ThingMVID, blink1.Blink1PID)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	for _, d := range infos {
		fmt.Fprintf(stdout, "%s\t%04x:%04x\t%s %s\n",
			d.Path, d.VendorID, d.ProductID, d.Manufacturer, d.Product)
	}
	return 0
}

// reportWriter is the contract both transports satisfy.
type reportWriter interface {
	WriteFeature(reportID byte, data []byte) error
	Close() error
}

// openDevice opens the first attached blink(1), preferring the HID path
// and falling back to raw USB when no HID handle can be obtained.
func openDevice() (reportWriter, error) {
	mgr, err := hid.NewManager()
	if err == nil {
		dev, err := mgr.OpenVIDPID(blink1.ThingMVID, blink1.Blink1PID)
		if err == nil {
			return dev, nil
		}
		slog.Debug("HID open failed, trying raw USB", slog.Any("error", err))
	}

	return usbraw.Open(blink1.ThingMVID, blink1.Blink1PID)
}

func sendReport(dev reportWriter, report []byte) error {
	if err := dev.WriteFeature(report[0], report[1:]); err != nil {
		return fmt.Errorf("send report: %w", err)
	}
	return nil
}
