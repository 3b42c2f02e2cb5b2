package internals

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllHashAlgosDefined checks that *distinctive* hash algorithms
// are available for every supported identifier
func TestAllHashAlgosDefined(t *testing.T) {
	names := make([]string, 0, 8)
	for _, name := range SupportedHashAlgorithms() {
		algo, err := HashAlgorithmFromString(name)
		require.NoError(t, err)

		h := algo.Algorithm()
		assert.Equal(t, name, h.Name())
		assert.Len(t, h.Digest(), h.Size(), name)
		assert.NotContains(t, names, h.Name())
		names = append(names, h.Name())
	}
	assert.Contains(t, names, string(DefaultHash))
}

func TestDigestSize(t *testing.T) {
	assert.Equal(t, 32, HashSHA256.DigestSize())
	assert.Equal(t, 64, HashSHA512.DigestSize())
	assert.Equal(t, 32, HashSHA3_256.DigestSize())
	assert.Equal(t, 64, HashSHA3_512.DigestSize())
	assert.Equal(t, 32, HashBLAKE3_256.DigestSize())
	assert.Equal(t, 0, HashAlgo("crc32").DigestSize())
}

func TestHashAlgorithmFromString(t *testing.T) {
	algo, err := HashAlgorithmFromString(" SHA-256 ")
	require.NoError(t, err)
	assert.Equal(t, HashSHA256, algo)

	_, err = HashAlgorithmFromString("crc32")
	assert.EqualError(t, err, `unknown hash algorithm "crc32"`)
}

// TestEmptyInputDigests compares the digests of the empty input with published test vectors
func TestEmptyInputDigests(t *testing.T) {
	data := map[HashAlgo]string{
		HashSHA256:     `e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855`,
		HashSHA512:     `cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e`,
		HashSHA3_256:   `a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a`,
		HashSHA3_512:   `a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26`,
		HashBLAKE3_256: `af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262`,
	}
	require.Len(t, data, len(SupportedHashAlgorithms()))

	for algo, refDigest := range data {
		assert.Equal(t, Fingerprint(refDigest), hashBytes([]byte{}, algo), string(algo))
	}
}

func TestSHA256ABC(t *testing.T) {
	assert.Equal(t,
		Fingerprint(`ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad`),
		hashBytes([]byte("abc"), HashSHA256))
}

func TestHashFileDeterministic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.txt")
	writeTestFile(t, path, FILECONTENT)

	for _, name := range SupportedHashAlgorithms() {
		algo := HashAlgo(name)
		first, err := HashFile(path, algo)
		require.NoError(t, err)
		second, err := HashFile(path, algo)
		require.NoError(t, err)

		assert.Equal(t, first, second, name)
		assert.Equal(t, hashBytes([]byte(FILECONTENT), algo), first, name)
		assert.Len(t, string(first), 2*algo.DigestSize(), name)
		assert.Equal(t, strings.ToLower(string(first)), string(first), name)
	}
}

func TestHashFileSensitivity(t *testing.T) {
	dir := t.TempDir()
	original := []byte(FILECONTENT)
	mutated := bytes.Clone(original)
	mutated[3] ^= 0x01

	writeTestFile(t, filepath.Join(dir, "a"), string(original))
	writeTestFile(t, filepath.Join(dir, "b"), string(mutated))

	a, err := HashFile(filepath.Join(dir, "a"), DefaultHash)
	require.NoError(t, err)
	b, err := HashFile(filepath.Join(dir, "b"), DefaultHash)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

// TestHashFileLargerThanBuffer makes sure chunked reading covers the whole file
func TestHashFileLargerThanBuffer(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 3*readBufferSize/16+7)
	path := filepath.Join(t.TempDir(), "large")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	fp, err := HashFile(path, HashSHA512)
	require.NoError(t, err)
	assert.Equal(t, hashBytes(data, HashSHA512), fp)

	fromReader, err := HashReader(bytes.NewReader(data), HashSHA512)
	require.NoError(t, err)
	assert.Equal(t, fp, fromReader)
}

func TestHashFileReadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vanished")

	fp, err := HashFile(path, DefaultHash)
	assert.Empty(t, fp)

	var failure *ReadFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, path, failure.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestHashFileDirectory(t *testing.T) {
	_, err := HashFile(t.TempDir(), DefaultHash)
	var failure *ReadFailure
	assert.True(t, errors.As(err, &failure))
}

// TestSHA256sumCompatibility compares the fingerprint with the output of sha256sum
func TestSHA256sumCompatibility(t *testing.T) {
	executable := os.Getenv("SHA256SUM_EXEC")
	if executable == "" {
		executable = "sha256sum"
	}
	if _, err := exec.LookPath(executable); err != nil {
		t.Skipf("%s not available; set env var SHA256SUM_EXEC to find the executable", executable)
	}

	path := filepath.Join(t.TempDir(), "example.txt")
	writeTestFile(t, path, FILECONTENT)

	out, err := exec.Command(executable, path).Output()
	require.NoError(t, err)
	sumDigest, _, found := strings.Cut(strings.TrimSpace(string(out)), " ")
	require.True(t, found)

	fp, err := HashFile(path, HashSHA256)
	require.NoError(t, err)
	assert.Equal(t, sumDigest, string(fp))
}
