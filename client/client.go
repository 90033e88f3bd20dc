package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"line-relay/api/relay"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `envconfig:"RELAY_SERVER_ADDR" default:"localhost:50051"`
	Token         string `envconfig:"RELAY_TOKEN" required:"true"`
	Line          int    `envconfig:"RELAY_LINE" default:"-1"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"INFO"`
	// RELAY_COLOURS enables colorized output
	Colours bool `envconfig:"RELAY_COLOURS" default:"true"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run connects to the relay and turns stdin lines into frames:
// "/join <line>", "/leave", "/pending", "/profile", anything else is sent to the current line.
func run() (int, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	client := relay.NewRelayServiceClient(conn)
	stream, err := client.Connect(ctx)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open stream: %w", err)
	}

	p := printer{colours: config.Colours}
	p.info(fmt.Sprintf(">>> Connected to %s (Ctrl+C to quit)", config.ServerAddress))

	session := &clientSession{token: config.Token, line: config.Line}
	if session.line >= 0 {
		if err := stream.Send(session.frame(relay.KindJoin, "")); err != nil {
			return exitRuntime, fmt.Errorf("join failed: %w", err)
		}
	}

	go session.readInput(ctx, stream, client, p)

	for {
		frame, err := stream.Recv()
		if err != nil {
			if err == io.EOF || ctx.Err() != nil {
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("stream error: %w", err)
		}
		p.frame(frame)
	}
}

type clientSession struct {
	token string
	line  int
	ref   int
}

func (c *clientSession) frame(kind, content string) *relay.ClientFrame {
	c.ref++
	return &relay.ClientFrame{
		Ref:     strconv.Itoa(c.ref),
		Kind:    kind,
		Token:   c.token,
		Line:    uint32(c.line),
		Content: content,
	}
}

func (c *clientSession) readInput(ctx context.Context, stream grpc.BidiStreamingClient[relay.ClientFrame, relay.ServerFrame], client relay.RelayServiceClient, p printer) {
	defer func() { _ = stream.CloseSend() }()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var frame *relay.ClientFrame
		fields := strings.Fields(text)
		switch fields[0] {
		case "/join":
			if len(fields) != 2 {
				p.warn("usage: /join <line>")
				continue
			}
			line, err := strconv.Atoi(fields[1])
			if err != nil || line < 0 {
				p.warn("line must be a number between 0 and 65535")
				continue
			}
			c.line = line
			frame = c.frame(relay.KindJoin, "")
		case "/leave":
			frame = c.frame(relay.KindLeave, "")
		case "/pending":
			frame = c.frame(relay.KindPending, "")
		case "/profile":
			c.profile(ctx, client, p)
			continue
		case "/quit":
			return
		default:
			if c.line < 0 {
				p.warn("join a line first with /join <line>")
				continue
			}
			frame = c.frame(relay.KindSend, text)
		}

		if err := stream.Send(frame); err != nil {
			p.warn(fmt.Sprintf("send failed: %v", err))
			return
		}
	}
}

func (c *clientSession) profile(ctx context.Context, client relay.RelayServiceClient, p printer) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	profile, err := client.GetProfile(ctx, &relay.ProfileRequest{})
	if err != nil {
		p.warn(fmt.Sprintf("profile failed: %v", err))
		return
	}
	p.info(fmt.Sprintf("%s (%s) at %s, contact %s",
		profile.ServerName, profile.ServerDescription, profile.ServerLocation, profile.AdminContact))
}

type printer struct {
	colours bool
}

func (p printer) render(style color.Style, text string) {
	if p.colours {
		text = style.Render(text)
	}
	fmt.Println(text)
}

func (p printer) info(text string) {
	p.render(color.New(color.FgCyan), text)
}

func (p printer) warn(text string) {
	p.render(color.New(color.FgYellow), text)
}

func (p printer) frame(frame *relay.ServerFrame) {
	switch frame.Type {
	case relay.FrameReply:
		p.render(color.New(color.FgGreen), fmt.Sprintf("[%s #%s] line %d: %s", frame.Kind, frame.Ref, frame.Line, frame.Result))
		p.messages(frame.Messages)
	case relay.FrameMessage:
		p.messages(frame.Messages)
	case relay.FrameError:
		p.render(color.New(color.FgRed), fmt.Sprintf("[%s #%s] line %d: %s %s", frame.Kind, frame.Ref, frame.Line, frame.Code, frame.Reason))
	}
}

func (p printer) messages(envelopes []relay.Envelope) {
	for _, envelope := range envelopes {
		at := time.UnixMilli(envelope.At).Format(time.TimeOnly)
		p.render(color.New(color.BgBlack, color.FgWhite), fmt.Sprintf("[%s] line %d: %s", at, envelope.Line, envelope.Content))
	}
}
