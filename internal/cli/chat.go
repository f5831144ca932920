package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/corpac/coba/internal/model"
)

// ChatSender is the part of the API client a chat session needs.
type ChatSender interface {
	StartConversation(ctx context.Context) (*model.Conversation, error)
	SendMessage(ctx context.Context, conversationID, content string) (*model.Reply, error)
}

// Chat runs an interactive assistant session: each non-blank input line is
// one user turn. "/salir" or end of input ends it. A failed turn is reported
// and the conversation carries on; only a cancelled ctx ends it early.
func Chat(ctx context.Context, s ChatSender, in io.Reader, out io.Writer) error {
	conv, err := s.StartConversation(ctx)
	if err != nil {
		return fmt.Errorf("start conversation: %w", err)
	}
	for _, t := range conv.Turns {
		printTurn(out, t)
	}

	sc := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			fmt.Fprint(out, "> ")
			continue
		case "/salir", "/exit":
			return nil
		}

		reply, err := s.SendMessage(ctx, conv.ID, line)
		switch {
		case err != nil && ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			fmt.Fprintf(out, "error: %v\n", err)
		default:
			printTurn(out, reply.Turn)
			if reply.Fallback && reply.Error != "" {
				fmt.Fprintf(out, "(respuesta de respaldo: %s)\n", reply.Error)
			}
		}
		fmt.Fprint(out, "> ")
	}
	return sc.Err()
}

func printTurn(out io.Writer, t model.ChatTurn) {
	who := "tú"
	if t.Role == model.RoleAssistant {
		who = "asistente"
	}
	fmt.Fprintf(out, "%s: %s\n", who, t.Content)
}
