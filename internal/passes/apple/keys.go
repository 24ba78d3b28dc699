package apple

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/youmark/pkcs8"
	"golang.org/x/crypto/pkcs12"
)

var (
	ErrNoPEMBlock     = errors.New("no PEM block found")
	ErrUnsupportedKey = errors.New("unsupported private key type")
)

// UnescapePEM turns literal "\n" sequences into newlines. Keys arrive
// through single-line environment variables in that form.
func UnescapePEM(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

// ParsePrivateKey decodes a PEM private key, possibly escaped with literal
// "\n" and possibly password protected (PKCS#8 "ENCRYPTED PRIVATE KEY" or
// legacy OpenSSL encrypted PEM).
func ParsePrivateKey(keyPEM, password string) (crypto.Signer, error) {
	block, _ := pem.Decode([]byte(UnescapePEM(keyPEM)))
	if block == nil {
		return nil, ErrNoPEMBlock
	}

	var (
		key any
		err error
	)
	switch {
	case block.Type == "ENCRYPTED PRIVATE KEY":
		key, err = pkcs8.ParsePKCS8PrivateKey(block.Bytes, []byte(password))
	case x509.IsEncryptedPEMBlock(block): //nolint:staticcheck // pass certificates are still exported this way
		var der []byte
		der, err = x509.DecryptPEMBlock(block, []byte(password)) //nolint:staticcheck
		if err == nil {
			key, err = parseDERKey(der)
		}
	default:
		key, err = parseDERKey(block.Bytes)
	}
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	signer, ok := key.(crypto.Signer)
	if !ok {
		return nil, ErrUnsupportedKey
	}
	return signer, nil
}

func parseDERKey(der []byte) (any, error) {
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(der); err == nil {
		return key, nil
	}
	return pkcs8.ParsePKCS8PrivateKey(der)
}

// ParseCertificate decodes the first PEM certificate in data.
func ParseCertificate(data []byte) (*x509.Certificate, error) {
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			return nil, ErrNoPEMBlock
		}
		if block.Type == "CERTIFICATE" {
			return x509.ParseCertificate(block.Bytes)
		}
	}
}

// ParseP12 extracts the key and certificate from a PKCS#12 bundle, the
// format Keychain exports pass type certificates in.
func ParseP12(data []byte, password string) (crypto.Signer, *x509.Certificate, error) {
	key, cert, err := pkcs12.Decode(data, password)
	if err != nil {
		return nil, nil, fmt.Errorf("decode p12: %w", err)
	}
	signer, ok := key.(crypto.Signer)
	if !ok {
		return nil, nil, ErrUnsupportedKey
	}
	return signer, cert, nil
}
