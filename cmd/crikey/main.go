// Command crikey is a reference IRC client: it registers with a server,
// echoes incoming messages to standard output, and sends whatever the user
// types on standard input as a raw line.
package main

import (
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"time"

	"github.com/crikeyirc/crikey"
	"github.com/crikeyirc/crikey/internal/auth"
	"github.com/crikeyirc/crikey/internal/config"
	"github.com/crikeyirc/crikey/internal/dispatcher"
	"github.com/crikeyirc/crikey/internal/terminal"
	"github.com/crikeyirc/crikey/ircdebug"
	"github.com/pkg/errors"
)

const pollInterval = 100 * time.Millisecond

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatalf("crikey: %v", err)
	}
	applyOverrides(cfg, os.Args[1:])

	if err := run(cfg, logger); err != nil {
		logger.Fatalf("crikey: %v", err)
	}
}

func loadConfig() (*config.Data, error) {
	path, err := config.FindPath()
	if err != nil {
		return nil, errors.Wrap(err, "resolve config path")
	}
	data, err := config.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &data, nil
}

// applyOverrides applies up to four positional CLI arguments, in order:
// server address, nickname, username, real name.
func applyOverrides(cfg *config.Data, args []string) {
	if len(args) >= 1 {
		cfg.ServerAddr = args[0]
	}
	if len(args) >= 2 {
		cfg.Nick = args[1]
	}
	if len(args) >= 3 {
		cfg.Username = args[2]
	}
	if len(args) >= 4 {
		cfg.Realname = args[3]
	}
}

func run(cfg *config.Data, logger *log.Logger) error {
	nick, err := crikey.ParseNickname(cfg.Nick)
	if err != nil {
		return errors.Wrap(err, "invalid nick in config")
	}
	username, err := crikey.ParseUsername(cfg.Username)
	if err != nil {
		return errors.Wrap(err, "invalid username in config")
	}

	conn, err := net.Dial("tcp", cfg.ServerAddr)
	if err != nil {
		return errors.Wrap(err, "dial server")
	}
	defer conn.Close()

	var rw io.ReadWriter = conn
	if os.Getenv("CRIKEY_DEBUG") != "" {
		rw = ircdebug.WriteTo(os.Stderr, conn, "-> ", "<- ")
	}

	connection := crikey.NewConnection(rw, logger)
	disp := dispatcher.New()
	term := terminal.New(os.Stdin)

	token := auth.Token{Nickname: nick, Username: username, Mode: 8, Realname: cfg.Realname, Password: cfg.Password}
	for _, cmd := range token.Commands() {
		if err := connection.Send(cmd); err != nil {
			return errors.Wrap(err, "send registration command")
		}
	}

	disp.RegisterCommandListener("PING", func(cmd crikey.Command) {
		if err := connection.Send(crikey.NewPong(cmd.To, "", false)); err != nil {
			logger.Printf("crikey: reply to PING failed: %v", err)
		}
	})

	for {
		msg, err := connection.Poll()
		if err != nil {
			return errors.Wrap(err, "connection closed")
		}
		if msg != nil {
			fmt.Println(msg.String())
			switch {
			case msg.Body.Command != nil:
				disp.HandleCommand(*msg.Body.Command)
			case msg.Body.Reply != nil:
				disp.HandleReply(*msg.Body.Reply)
			}
		}

		if line, ok := term.Read(); ok {
			if err := connection.SendRaw(line); err != nil {
				return errors.Wrap(err, "send user input")
			}
		} else if term.Closed() {
			return errors.New("terminal input closed")
		}

		time.Sleep(pollInterval)
	}
}

