package main

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/noos-go/iio-demo/pkg/iio"
)

var errUsage = errors.New("usage")

// Shell runs commands against one server.
type Shell struct {
	client *iio.Client
	rl     *readline.Instance
}

// NewShell creates a readline shell over client.
func NewShell(client *iio.Client) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "iio> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("help"), readline.PcItem("version"), readline.PcItem("print"),
			readline.PcItem("read"), readline.PcItem("write"), readline.PcItem("open"),
			readline.PcItem("close"), readline.PcItem("readbuf"), readline.PcItem("writebuf"),
			readline.PcItem("timeout"), readline.PcItem("quit"),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{client: client, rl: rl}, nil
}

// Stdout returns a writer that coordinates with the prompt.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Run reads commands until EOF or quit.
func (s *Shell) Run(ctx context.Context) {
	defer s.rl.Close()
	printHelp(s.rl.Stdout())

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return
		}
		if quit := execute(ctx, s.client, s.rl.Stdout(), line); quit {
			return
		}
	}
}

// execute runs one command line. It reports whether the shell should exit.
func execute(ctx context.Context, c *iio.Client, w io.Writer, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "help", "?":
		printHelp(w)
	case "quit", "exit", "q":
		return true
	case "version", "v":
		err = cmdVersion(ctx, c, w)
	case "print", "p", "devices":
		err = cmdPrint(ctx, c, w)
	case "read", "r":
		err = cmdRead(ctx, c, w, args)
	case "write", "w":
		err = cmdWrite(ctx, c, w, args)
	case "open":
		err = cmdOpen(ctx, c, w, args)
	case "close":
		err = cmdClose(ctx, c, w, args)
	case "readbuf", "rb":
		err = cmdReadBuf(ctx, c, w, args)
	case "writebuf", "wb":
		err = cmdWriteBuf(ctx, c, w, args)
	case "timeout":
		err = cmdTimeout(ctx, c, w, args)
	default:
		err = fmt.Errorf("unknown command %q (try help)", cmd)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return false
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `Commands:
  version                          protocol version of the server
  print                            context, devices and channels
  read <dev> [ch] <attr>           read a device or channel attribute
  write <dev> [ch] <attr> <value>  write a device or channel attribute
  open <dev> <mask> <samples> [cyclic]
  close <dev>
  readbuf <dev> <bytes>            read samples, shown per scan
  writebuf <dev> <hex>             push raw little-endian samples
  timeout <ms>                     server I/O timeout
  quit
`)
}

func cmdVersion(ctx context.Context, c *iio.Client, w io.Writer) error {
	v, err := c.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", v)
	return nil
}

func cmdPrint(ctx context.Context, c *iio.Client, w io.Writer) error {
	info, err := c.Print(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (%s) protocol %d.%d\n", info.Name, info.Description, info.Version.Major, info.Version.Minor)
	for k, v := range info.Attributes {
		fmt.Fprintf(w, "  %s = %s\n", k, v)
	}
	for _, d := range info.Devices {
		fmt.Fprintf(w, "%s: %s  attrs %v\n", d.ID, d.Name, d.Attributes)
		for _, ch := range d.Channels {
			dir := "in"
			if ch.Output {
				dir = "out"
			}
			fmt.Fprintf(w, "  [%d] %s %s %d/%d attrs %v\n", ch.Index, ch.ID, dir, ch.Scan.Bits, ch.Scan.StorageBits, ch.Attributes)
		}
	}
	return nil
}

// attrTarget splits "<dev> [ch] <attr> ..." into its parts; rest holds
// the arguments after the attribute name.
func attrTarget(args []string, tail int) (dev string, ch *uint16, attr string, rest []string, err error) {
	switch len(args) - tail {
	case 2:
		return args[0], nil, args[1], args[2:], nil
	case 3:
		n, perr := strconv.ParseUint(args[1], 10, 16)
		if perr != nil {
			return "", nil, "", nil, fmt.Errorf("channel %q: %w", args[1], perr)
		}
		c := uint16(n)
		return args[0], &c, args[2], args[3:], nil
	default:
		return "", nil, "", nil, errUsage
	}
}

func cmdRead(ctx context.Context, c *iio.Client, w io.Writer, args []string) error {
	dev, ch, attr, _, err := attrTarget(args, 0)
	if err != nil {
		return err
	}
	v, err := c.ReadAttr(ctx, dev, ch, attr)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, v)
	return nil
}

func cmdWrite(ctx context.Context, c *iio.Client, w io.Writer, args []string) error {
	dev, ch, attr, rest, err := attrTarget(args, 1)
	if err != nil {
		return err
	}
	if err := c.WriteAttr(ctx, dev, ch, attr, rest[0]); err != nil {
		return err
	}
	fmt.Fprintln(w, "ok")
	return nil
}

func cmdOpen(ctx context.Context, c *iio.Client, w io.Writer, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return errUsage
	}
	mask, err := strconv.ParseUint(args[1], 0, 32)
	if err != nil {
		return fmt.Errorf("mask %q: %w", args[1], err)
	}
	samples, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		return fmt.Errorf("samples %q: %w", args[2], err)
	}
	cyclic := len(args) == 4 && args[3] == "cyclic"
	if err := c.OpenBuffer(ctx, args[0], uint32(mask), uint32(samples), cyclic); err != nil {
		return err
	}
	fmt.Fprintln(w, "ok")
	return nil
}

func cmdClose(ctx context.Context, c *iio.Client, w io.Writer, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := c.CloseBuffer(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(w, "ok")
	return nil
}

func cmdReadBuf(ctx context.Context, c *iio.Client, w io.Writer, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	n, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("bytes %q: %w", args[1], err)
	}
	data, err := c.ReadBuffer(ctx, args[0], uint32(n))
	if err != nil {
		return err
	}
	for i := 0; i+1 < len(data); i += 2 {
		fmt.Fprintf(w, "%d ", int16(binary.LittleEndian.Uint16(data[i:])))
	}
	fmt.Fprintf(w, "\n(%d bytes)\n", len(data))
	return nil
}

func cmdWriteBuf(ctx context.Context, c *iio.Client, w io.Writer, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	data, err := hex.DecodeString(args[1])
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	n, err := c.WriteBuffer(ctx, args[0], data)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d bytes written\n", n)
	return nil
}

func cmdTimeout(ctx context.Context, c *iio.Client, w io.Writer, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	ms, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("timeout %q: %w", args[0], err)
	}
	if err := c.SetServerTimeout(ctx, time.Duration(ms)*time.Millisecond); err != nil {
		return err
	}
	fmt.Fprintln(w, "ok")
	return nil
}
