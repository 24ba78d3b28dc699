package apple

import (
	"crypto"
	"crypto/x509"
	"fmt"

	"github.com/smallstep/pkcs7"
)

// Signer makes the detached PKCS#7 signature over manifest.json.
type Signer struct {
	cert *x509.Certificate
	key  crypto.Signer
	wwdr *x509.Certificate
}

func NewSigner(cert *x509.Certificate, key crypto.Signer, wwdr *x509.Certificate) *Signer {
	return &Signer{cert: cert, key: key, wwdr: wwdr}
}

// NewSignerFromPEM builds a Signer from the pass certificate, its (escaped,
// password protected) private key and the WWDR certificate.
func NewSignerFromPEM(certPEM []byte, keyPEM, password string, wwdrPEM []byte) (*Signer, error) {
	cert, err := ParseCertificate(certPEM)
	if err != nil {
		return nil, fmt.Errorf("pass certificate: %w", err)
	}
	key, err := ParsePrivateKey(keyPEM, password)
	if err != nil {
		return nil, err
	}
	wwdr, err := ParseCertificate(wwdrPEM)
	if err != nil {
		return nil, fmt.Errorf("wwdr certificate: %w", err)
	}
	return NewSigner(cert, key, wwdr), nil
}

// NewSignerFromP12 builds a Signer from a PKCS#12 bundle.
func NewSignerFromP12(p12 []byte, password string, wwdrPEM []byte) (*Signer, error) {
	key, cert, err := ParseP12(p12, password)
	if err != nil {
		return nil, err
	}
	wwdr, err := ParseCertificate(wwdrPEM)
	if err != nil {
		return nil, fmt.Errorf("wwdr certificate: %w", err)
	}
	return NewSigner(cert, key, wwdr), nil
}

// Sign returns the DER encoded detached signature of manifest.
func (s *Signer) Sign(manifest []byte) ([]byte, error) {
	sd, err := pkcs7.NewSignedData(manifest)
	if err != nil {
		return nil, fmt.Errorf("new signed data: %w", err)
	}
	sd.SetDigestAlgorithm(pkcs7.OIDDigestAlgorithmSHA256)

	var parents []*x509.Certificate
	if s.wwdr != nil {
		parents = append(parents, s.wwdr)
	}
	if err := sd.AddSignerChain(s.cert, s.key, parents, pkcs7.SignerInfoConfig{}); err != nil {
		return nil, fmt.Errorf("add signer: %w", err)
	}
	sd.Detach()

	return sd.Finish()
}
