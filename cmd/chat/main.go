package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/akash-23-k/Tech-Query/internal/config"
	"github.com/akash-23-k/Tech-Query/internal/domain"
	"github.com/akash-23-k/Tech-Query/internal/llm"
	"github.com/akash-23-k/Tech-Query/internal/repository"
	"github.com/akash-23-k/Tech-Query/internal/service"
)

// Cliente de terminal: mismos servicios que la API, sin HTTP de por medio.
func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewNop()

	durable, err := repository.NewSQLiteKV(cfg.DataPath)
	if err != nil {
		log.Fatal(err)
	}
	defer durable.Close()

	sessions := service.NewSessionStore(logger, durable, repository.NewMemoryKV(), func(sess *domain.Session) {
		if sess != nil {
			fmt.Printf("Sesión activa: %s\n", sess.Name)
		} else {
			fmt.Println("Sesión cerrada.")
		}
	})
	if err := sessions.Load(ctx); err != nil {
		log.Fatal(err)
	}

	directory := service.NewCredentialDirectory(logger, durable, cfg.AuthDelay)
	prefs := service.NewPreferences(durable)

	var remote llm.Client
	if cfg.LLMAPIKey != "" {
		remote = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	}
	responder := service.NewQueryResponder(logger, sessions, remote, cfg.LocalReplyDelay)

	fmt.Println("Tech Query chat. Comandos: signup, login, logout, whoami, theme <light|dark>, quit.")
	fmt.Println("Cualquier otra cosa se envía como consulta.")

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)

		switch {
		case line == "quit" || line == "exit":
			return
		case line == "signup":
			runSignup(ctx, reader, directory, sessions)
		case line == "login":
			runLogin(ctx, reader, directory, sessions)
		case line == "logout":
			if err := sessions.Clear(ctx); err != nil {
				fmt.Println("error:", err)
			}
		case line == "whoami":
			if sess := sessions.Active(); sess != nil {
				fmt.Printf("%s <%s> (%s)\n", sess.Name, sess.Email, sess.Mobile)
			} else {
				fmt.Println("Nadie inició sesión.")
			}
		case strings.HasPrefix(line, "theme"):
			runTheme(ctx, line, prefs)
		case line == "":
			continue
		default:
			answer, err := responder.Submit(ctx, line)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(answer.Raw)
		}
	}
}

func runSignup(ctx context.Context, reader *bufio.Reader, directory *service.CredentialDirectory, sessions *service.SessionStore) {
	name := prompt(reader, "Nombre: ")
	email := prompt(reader, "Email: ")
	mobile := prompt(reader, "Móvil: ")
	password := prompt(reader, "Contraseña: ")
	confirm := prompt(reader, "Confirmar contraseña: ")
	if password != confirm {
		fmt.Println("error: passwords do not match")
		return
	}

	account, err := directory.Register(ctx, service.RegisterInput{
		Name:   name,
		Email:  email,
		Mobile: mobile,
		Secret: password,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := sessions.SetActive(ctx, account.Session(), true); err != nil {
		fmt.Println("error:", err)
	}
}

func runLogin(ctx context.Context, reader *bufio.Reader, directory *service.CredentialDirectory, sessions *service.SessionStore) {
	identifier := prompt(reader, "Email o móvil: ")
	password := prompt(reader, "Contraseña: ")
	remember := strings.EqualFold(prompt(reader, "¿Recordar sesión? [s/N]: "), "s")

	account, err := directory.Authenticate(ctx, identifier, password)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := sessions.SetActive(ctx, account.Session(), remember); err != nil {
		fmt.Println("error:", err)
	}
}

func runTheme(ctx context.Context, line string, prefs *service.Preferences) {
	fields := strings.Fields(line)
	if len(fields) == 1 {
		theme, err := prefs.Theme(ctx)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("Tema:", theme)
		return
	}
	if err := prefs.SetTheme(ctx, fields[1]); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Tema:", fields[1])
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
