package detectors

import (
	"testing"

	"github.com/posturekit/posturekit/internal/types"
)

func TestUnloggedAuthPath(t *testing.T) {
	src := []byte(`
func AuthenticateUser(name, pass string) bool {
	return store.check(name, pass)
}
`)
	ms := Run(unloggedAuthPath, "internal/auth/auth.go", src)
	if len(ms) != 1 {
		t.Fatalf("got %d matches, want 1", len(ms))
	}
	if ms[0].ControlID != "SM-01" || ms[0].Confidence != types.ConfHeuristic {
		t.Fatalf("unexpected match: %+v", ms[0])
	}
}

func TestAuthPathWithLoggingSuppressed(t *testing.T) {
	src := []byte(`
func AuthenticateUser(name, pass string) bool {
	ok := store.check(name, pass)
	logger.Info("login attempt", "user", name, "ok", ok)
	return ok
}
`)
	if ms := Run(unloggedAuthPath, "internal/auth/auth.go", src); len(ms) != 0 {
		t.Fatalf("logged auth path flagged: %+v", ms)
	}
}

func TestAuthPathPythonDef(t *testing.T) {
	src := []byte("def verify_password(user, pw):\n    return hashcmp(user.pw, pw)\n")
	if ms := Run(unloggedAuthPath, "app/auth.py", src); len(ms) != 1 {
		t.Fatalf("got %+v", ms)
	}
}
