package detectors

import (
	"testing"

	"github.com/posturekit/posturekit/internal/types"
)

func TestWeakHash(t *testing.T) {
	cases := []string{
		`digest = md5(payload)`,
		`h := sha1(data)`,
		`import "crypto/md5"`,
		`MessageDigest.getInstance("SHA-1")`,
	}
	for _, src := range cases {
		ms := Run(weakHash, "hash.go", []byte(src))
		if len(ms) != 1 {
			t.Errorf("%q: got %d matches, want 1", src, len(ms))
			continue
		}
		if ms[0].Confidence != types.ConfHeuristic || ms[0].ControlID != "CR-04" {
			t.Errorf("%q: unexpected match %+v", src, ms[0])
		}
	}

	if ms := Run(weakHash, "hash.go", []byte(`h := sha256.Sum256(data)`)); len(ms) != 0 {
		t.Errorf("sha256 flagged: %+v", ms)
	}
}

func TestWeakCipher(t *testing.T) {
	cases := []string{
		`import "crypto/rc4"`,
		`cipher = DES.new(key, DES.MODE_ECB)`,
		`Cipher.getInstance("DESede/CBC/PKCS5Padding")`,
	}
	for _, src := range cases {
		ms := Run(weakCipher, "crypt.py", []byte(src))
		if len(ms) != 1 || ms[0].Confidence != types.ConfDefinite {
			t.Errorf("%q: got %+v", src, ms)
		}
	}
}

func TestCryptoTestPathSuppressed(t *testing.T) {
	if ms := Run(weakHash, "internal/hash/hash_test.go", []byte(`digest = md5(payload)`)); len(ms) != 0 {
		t.Errorf("test path not suppressed: %+v", ms)
	}
}
