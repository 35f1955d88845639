package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"

	cryptoDomain "github.com/pawga/crypto/internal/domain/crypto"
)

// StreamCipher is an initialized cipher context that is fed incrementally.
// Update must not retain p. Final flushes padding and may be called only once.
type StreamCipher interface {
	Update(p []byte) ([]byte, error)
	Final() ([]byte, error)
}

// RunStream reads r in chunks of chunkSize bytes, passes every chunk through c and writes each
// non-empty result to w as soon as it is produced. After the end of input, Final is invoked
// exactly once and its output is written last. It returns the number of bytes written.
func RunStream(c StreamCipher, chunkSize int, r io.Reader, w io.Writer) (int64, error) {
	if chunkSize < 1 {
		return 0, fmt.Errorf("invalid chunk size %d", chunkSize)
	}

	var written int64
	write := func(out []byte) error {
		if len(out) == 0 {
			return nil
		}
		n, err := w.Write(out)
		written += int64(n)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	buffer := make([]byte, chunkSize)
	for {
		n, readErr := r.Read(buffer)
		if n > 0 {
			out, err := c.Update(buffer[:n])
			if err != nil {
				return written, err
			}
			if err := write(out); err != nil {
				return written, err
			}
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return written, fmt.Errorf("failed to read input: %w", readErr)
		}
	}

	out, err := c.Final()
	if err != nil {
		return written, err
	}
	return written, write(out)
}

// processAll runs the whole buffer through c in a single step.
func processAll(c StreamCipher, data []byte) ([]byte, error) {
	out, err := c.Update(data)
	if err != nil {
		return nil, err
	}
	tail, err := c.Final()
	if err != nil {
		return nil, err
	}
	return append(out, tail...), nil
}

// newAESBlock builds the AES block cipher and validates the IV length.
func newAESBlock(key, iv []byte) (cipher.Block, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrCipher, err)
	}
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("%w: IV length must be %d bytes, got %d", cryptoDomain.ErrCipher, block.BlockSize(), len(iv))
	}
	return block, nil
}

// cbcEncrypter encrypts with AES-CBC and appends PKCS#7 padding on Final.
type cbcEncrypter struct {
	mode    cipher.BlockMode
	pending []byte
	done    bool
}

// NewCBCEncrypter returns a StreamCipher that encrypts with AES-CBC and PKCS#7 padding.
func NewCBCEncrypter(key, iv []byte) (StreamCipher, error) {
	block, err := newAESBlock(key, iv)
	if err != nil {
		return nil, err
	}
	return &cbcEncrypter{mode: cipher.NewCBCEncrypter(block, iv)}, nil
}

func (e *cbcEncrypter) Update(p []byte) ([]byte, error) {
	if e.done {
		return nil, fmt.Errorf("%w: cipher already finalized", cryptoDomain.ErrCipher)
	}
	e.pending = append(e.pending, p...)

	blockSize := e.mode.BlockSize()
	full := len(e.pending) - len(e.pending)%blockSize
	if full == 0 {
		return nil, nil
	}

	out := make([]byte, full)
	e.mode.CryptBlocks(out, e.pending[:full])
	e.pending = append(e.pending[:0], e.pending[full:]...)
	return out, nil
}

func (e *cbcEncrypter) Final() ([]byte, error) {
	if e.done {
		return nil, fmt.Errorf("%w: cipher already finalized", cryptoDomain.ErrCipher)
	}
	e.done = true

	padded := pkcs7Pad(e.pending, e.mode.BlockSize())
	out := make([]byte, len(padded))
	e.mode.CryptBlocks(out, padded)
	e.pending = nil
	return out, nil
}

// cbcDecrypter decrypts AES-CBC and removes PKCS#7 padding on Final. The last complete
// block is withheld until Final because only then is it known to carry the padding.
type cbcDecrypter struct {
	mode    cipher.BlockMode
	pending []byte
	done    bool
}

// NewCBCDecrypter returns a StreamCipher that decrypts AES-CBC and strips PKCS#7 padding.
func NewCBCDecrypter(key, iv []byte) (StreamCipher, error) {
	block, err := newAESBlock(key, iv)
	if err != nil {
		return nil, err
	}
	return &cbcDecrypter{mode: cipher.NewCBCDecrypter(block, iv)}, nil
}

func (d *cbcDecrypter) Update(p []byte) ([]byte, error) {
	if d.done {
		return nil, fmt.Errorf("%w: cipher already finalized", cryptoDomain.ErrCipher)
	}
	d.pending = append(d.pending, p...)

	blockSize := d.mode.BlockSize()
	ready := len(d.pending) - len(d.pending)%blockSize
	if len(d.pending)%blockSize == 0 {
		ready -= blockSize
	}
	if ready <= 0 {
		return nil, nil
	}

	out := make([]byte, ready)
	d.mode.CryptBlocks(out, d.pending[:ready])
	d.pending = append(d.pending[:0], d.pending[ready:]...)
	return out, nil
}

func (d *cbcDecrypter) Final() ([]byte, error) {
	if d.done {
		return nil, fmt.Errorf("%w: cipher already finalized", cryptoDomain.ErrCipher)
	}
	d.done = true

	blockSize := d.mode.BlockSize()
	if len(d.pending) != blockSize {
		return nil, fmt.Errorf("%w: ciphertext is not a non-empty multiple of the block size", cryptoDomain.ErrCipher)
	}

	out := make([]byte, blockSize)
	d.mode.CryptBlocks(out, d.pending)
	d.pending = nil
	return pkcs7Unpad(out, blockSize)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padding)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padding)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: invalid padded data length %d", cryptoDomain.ErrCipher, len(data))
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, fmt.Errorf("%w: invalid padding", cryptoDomain.ErrCipher)
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("%w: invalid padding", cryptoDomain.ErrCipher)
		}
	}
	return data[:len(data)-padding], nil
}
