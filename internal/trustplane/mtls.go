package trustplane

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// MTLSConfig names the certificate material for the optional mutual-TLS
// layer of §4.8: each service has a key-pair signed by a local CA, and
// verifies the peer's chain against that CA. Hostname verification is
// disabled deliberately — identities are established by certificate
// subject, not DNS, since services address each other by private IP.
type MTLSConfig struct {
	CertFile string `json:",optional"`
	KeyFile  string `json:",optional"`
	CAFile   string `json:",optional"`
}

// Enabled reports whether enough material was provided to build a TLS
// config; an empty MTLSConfig means the service runs on the plain
// service-credential mechanism only.
func (c MTLSConfig) Enabled() bool {
	return c.CertFile != "" && c.KeyFile != "" && c.CAFile != ""
}

// Build constructs a *tls.Config suitable for both serving and dialing:
// it presents this service's certificate and requires/verifies the peer's
// certificate against the shared CA pool, with hostname verification
// disabled in favor of certificate-subject identity.
func (c MTLSConfig) Build() (*tls.Config, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("trustplane: mTLS config incomplete")
	}

	cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("trustplane: load key pair: %w", err)
	}

	caPEM, err := os.ReadFile(c.CAFile)
	if err != nil {
		return nil, fmt.Errorf("trustplane: read CA file: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("trustplane: no certificates parsed from %s", c.CAFile)
	}

	return &tls.Config{
		Certificates:       []tls.Certificate{cert},
		RootCAs:            pool,
		ClientCAs:          pool,
		ClientAuth:         tls.RequireAndVerifyClientCert,
		InsecureSkipVerify: true,
		VerifyPeerCertificate: func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
			return verifyAgainstPool(pool, rawCerts)
		},
		MinVersion: tls.VersionTLS12,
	}, nil
}

func verifyAgainstPool(pool *x509.CertPool, rawCerts [][]byte) error {
	if len(rawCerts) == 0 {
		return fmt.Errorf("trustplane: peer presented no certificate")
	}
	leaf, err := x509.ParseCertificate(rawCerts[0])
	if err != nil {
		return fmt.Errorf("trustplane: parse peer certificate: %w", err)
	}
	opts := x509.VerifyOptions{Roots: pool, KeyUsages: []x509.ExtKeyUsage{x509.ExtKeyUsageAny}}
	_, err = leaf.Verify(opts)
	if err != nil {
		return fmt.Errorf("trustplane: verify peer certificate chain: %w", err)
	}
	return nil
}
