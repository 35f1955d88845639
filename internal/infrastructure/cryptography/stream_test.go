//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"io"
	"strings"
	"testing"

	cryptoDomain "github.com/pawga/crypto/internal/domain/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCipher upper-cases its input and records every call.
type recordingCipher struct {
	updates    [][]byte
	finalCalls int
	finalOut   []byte
	updateErr  error
	finalErr   error
}

func (c *recordingCipher) Update(p []byte) ([]byte, error) {
	if c.updateErr != nil {
		return nil, c.updateErr
	}
	c.updates = append(c.updates, append([]byte(nil), p...))
	return bytes.ToUpper(p), nil
}

func (c *recordingCipher) Final() ([]byte, error) {
	c.finalCalls++
	if c.finalErr != nil {
		return nil, c.finalErr
	}
	return c.finalOut, nil
}

type errReader struct {
	data []byte
	err  error
}

func (r *errReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestRunStream(t *testing.T) {
	t.Run("ChunksInputAndCallsFinalOnce", func(t *testing.T) {
		c := &recordingCipher{finalOut: []byte("!")}
		var out bytes.Buffer

		written, err := RunStream(c, 4, strings.NewReader("abcdefghij"), &out)
		require.NoError(t, err)

		assert.Equal(t, "ABCDEFGHIJ!", out.String())
		assert.Equal(t, int64(11), written)
		assert.Equal(t, 1, c.finalCalls)
		require.Len(t, c.updates, 3)
		assert.Equal(t, []byte("abcd"), c.updates[0])
		assert.Equal(t, []byte("ij"), c.updates[2])
	})

	t.Run("EmptyInputStillFinalizes", func(t *testing.T) {
		c := &recordingCipher{finalOut: []byte("pad")}
		var out bytes.Buffer

		written, err := RunStream(c, 16, bytes.NewReader(nil), &out)
		require.NoError(t, err)

		assert.Empty(t, c.updates)
		assert.Equal(t, 1, c.finalCalls)
		assert.Equal(t, "pad", out.String())
		assert.Equal(t, int64(3), written)
	})

	t.Run("InvalidChunkSize", func(t *testing.T) {
		c := &recordingCipher{}
		_, err := RunStream(c, 0, strings.NewReader("abc"), io.Discard)
		assert.Error(t, err)
		assert.Zero(t, c.finalCalls)
	})

	t.Run("ReadErrorSkipsFinal", func(t *testing.T) {
		c := &recordingCipher{}
		readErr := errors.New("connection reset")
		var out bytes.Buffer

		_, err := RunStream(c, 2, &errReader{data: []byte("abc"), err: readErr}, &out)
		assert.ErrorIs(t, err, readErr)
		assert.Zero(t, c.finalCalls)
		assert.Equal(t, "ABC", out.String())
	})

	t.Run("UpdateErrorStops", func(t *testing.T) {
		c := &recordingCipher{updateErr: cryptoDomain.ErrCipher}
		_, err := RunStream(c, 2, strings.NewReader("abc"), io.Discard)
		assert.ErrorIs(t, err, cryptoDomain.ErrCipher)
		assert.Zero(t, c.finalCalls)
	})

	t.Run("FinalErrorIsReturned", func(t *testing.T) {
		c := &recordingCipher{finalErr: cryptoDomain.ErrCipher}
		var out bytes.Buffer
		written, err := RunStream(c, 2, strings.NewReader("abc"), &out)
		assert.ErrorIs(t, err, cryptoDomain.ErrCipher)
		assert.Equal(t, int64(3), written)
	})
}

func TestCBCStreamCiphers(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	iv := simpleIV[:]

	t.Run("SplitUpdatesMatchSingleUpdate", func(t *testing.T) {
		plainText := []byte("The quick brown fox jumps over the lazy dog, twice over.")

		whole, err := NewCBCEncrypter(key, iv)
		require.NoError(t, err)
		expected, err := processAll(whole, plainText)
		require.NoError(t, err)

		split, err := NewCBCEncrypter(key, iv)
		require.NoError(t, err)
		var actual []byte
		for _, part := range [][]byte{plainText[:3], plainText[3:20], plainText[20:]} {
			out, err := split.Update(part)
			require.NoError(t, err)
			actual = append(actual, out...)
		}
		tail, err := split.Final()
		require.NoError(t, err)
		actual = append(actual, tail...)

		assert.Equal(t, expected, actual)
	})

	t.Run("DecrypterWithholdsLastBlock", func(t *testing.T) {
		enc, err := NewCBCEncrypter(key, iv)
		require.NoError(t, err)
		cipherText, err := processAll(enc, bytes.Repeat([]byte("a"), 32))
		require.NoError(t, err)
		require.Len(t, cipherText, 48)

		dec, err := NewCBCDecrypter(key, iv)
		require.NoError(t, err)
		out, err := dec.Update(cipherText)
		require.NoError(t, err)
		assert.Len(t, out, 32)

		tail, err := dec.Final()
		require.NoError(t, err)
		assert.Empty(t, tail)
	})

	t.Run("FinalTwiceFails", func(t *testing.T) {
		enc, err := NewCBCEncrypter(key, iv)
		require.NoError(t, err)
		_, err = enc.Final()
		require.NoError(t, err)

		_, err = enc.Final()
		assert.ErrorIs(t, err, cryptoDomain.ErrCipher)
		_, err = enc.Update([]byte("late"))
		assert.ErrorIs(t, err, cryptoDomain.ErrCipher)
	})

	t.Run("BadPadding", func(t *testing.T) {
		block, err := aes.NewCipher(key)
		require.NoError(t, err)
		unpadded := append(bytes.Repeat([]byte("x"), 15), 0x00)
		cipherText := make([]byte, len(unpadded))
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(cipherText, unpadded)

		dec, err := NewCBCDecrypter(key, iv)
		require.NoError(t, err)
		_, err = processAll(dec, cipherText)
		assert.ErrorIs(t, err, cryptoDomain.ErrCipher)
	})

	t.Run("InvalidKeyAndIV", func(t *testing.T) {
		_, err := NewCBCEncrypter([]byte("short"), iv)
		assert.ErrorIs(t, err, cryptoDomain.ErrCipher)
		_, err = NewCBCDecrypter(key, []byte("short"))
		assert.ErrorIs(t, err, cryptoDomain.ErrCipher)
	})
}

func TestPKCS7(t *testing.T) {
	for _, size := range []int{0, 1, 15, 16, 17} {
		data := bytes.Repeat([]byte{0x07}, size)
		padded := pkcs7Pad(data, 16)
		assert.Zero(t, len(padded)%16)
		assert.Greater(t, len(padded), size)

		unpadded, err := pkcs7Unpad(padded, 16)
		require.NoError(t, err)
		assert.Equal(t, data, unpadded)
	}

	_, err := pkcs7Unpad(append(bytes.Repeat([]byte{0x00}, 15), 0x00), 16)
	assert.ErrorIs(t, err, cryptoDomain.ErrCipher)
	_, err = pkcs7Unpad(append(bytes.Repeat([]byte{0x00}, 15), 0x11), 16)
	assert.ErrorIs(t, err, cryptoDomain.ErrCipher)
	_, err = pkcs7Unpad(append(bytes.Repeat([]byte{0x00}, 14), 0x03, 0x02), 16)
	assert.ErrorIs(t, err, cryptoDomain.ErrCipher)
}
