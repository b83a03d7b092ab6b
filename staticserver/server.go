package staticserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
)

// OpenFunc abre uma URL no navegador padrão.
type OpenFunc func(url string) error

// OpenBrowser usa github.com/pkg/browser.
var OpenBrowser OpenFunc = browser.OpenURL

// PageURL monta a URL local da página inicial.
func PageURL(port int, page string) string {
	return fmt.Sprintf("http://localhost:%d/%s", port, strings.TrimPrefix(page, "/"))
}

// ResolveRoot devolve o diretório a ser servido. Sem valor explícito usa o
// diretório do executável; sob `go run` o executável fica no diretório
// temporário, e nesse caso vale o diretório de trabalho.
func ResolveRoot(explicit string) (string, error) {
	if explicit != "" {
		return absDir(explicit)
	}

	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dir := filepath.Dir(exe)
		if !within(dir, os.TempDir()) {
			return dir, nil
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return wd, nil
}

func absDir(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	st, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !st.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

func within(dir, parent string) bool {
	if resolved, err := filepath.EvalSymlinks(parent); err == nil {
		parent = resolved
	}
	rel, err := filepath.Rel(parent, dir)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// Serve atende em ln até ctx encerrar. No cancelamento o servidor é fechado
// imediatamente, sem esperar requisições em andamento, e Serve devolve nil.
func Serve(ctx context.Context, ln net.Listener, h http.Handler) error {
	srv := &http.Server{Handler: h}

	stop := context.AfterFunc(ctx, func() {
		_ = srv.Close()
	})
	defer stop()

	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
