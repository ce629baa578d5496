// Command gencert issues a local certificate authority and per-service
// leaf certificates for the mesh's optional mutual-TLS layer (§4.8,
// internal/trustplane's MTLSConfig). There is no ecosystem library in this
// codebase's dependency set for self-signed certificate issuance — every
// teacher and pack dependency is a storage, transport, or protocol client,
// none wrap crypto/x509 — so this stays on the standard library
// (documented as a stdlib exception in the design notes) behind a cobra
// command surface matching cmd/seed and
// _examples/luxfi-consensus/cmd/consensus.
package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

var (
	outDir   string
	validFor time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "gencert",
	Short: "Issue a local CA and internal mTLS certificates for the mesh",
}

func main() {
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "./certs", "directory to write the CA and issued certificates into")
	rootCmd.PersistentFlags().DurationVar(&validFor, "valid-for", 365*24*time.Hour, "certificate validity window")

	rootCmd.AddCommand(caCmd(), issueCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gencert: %v\n", err)
		os.Exit(1)
	}
}

func caCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ca",
		Short: "Generate the root CA used to sign every service certificate",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateCA(outDir)
		},
	}
}

func issueCmd() *cobra.Command {
	var hosts []string
	cmd := &cobra.Command{
		Use:   "issue <service-name>",
		Short: "Issue a leaf certificate for one service, signed by the local CA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return issueLeaf(outDir, args[0], hosts)
		},
	}
	cmd.Flags().StringSliceVar(&hosts, "host", []string{"127.0.0.1"}, "IP or DNS SANs for the leaf certificate")
	return cmd
}

// generateCA writes ca.crt and ca.key into dir: a self-signed root used to
// sign every service's leaf certificate, per §4.8's "each service has a
// key-pair signed by a local CA."
func generateCA(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return fmt.Errorf("generate CA key: %w", err)
	}

	serial, err := randomSerial()
	if err != nil {
		return err
	}

	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: "duel-server internal CA"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(validFor),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return fmt.Errorf("create CA certificate: %w", err)
	}

	if err := writeCertAndKey(dir, "ca", der, key); err != nil {
		return err
	}
	fmt.Printf("wrote %s and %s\n", filepath.Join(dir, "ca.crt"), filepath.Join(dir, "ca.key"))
	return nil
}

// issueLeaf signs a service's certificate with the CA written by
// generateCA, named after the service (e.g. "gateway.crt"/"gateway.key")
// so it drops straight into that service's MTLSConfig.
func issueLeaf(dir, service string, hosts []string) error {
	caCert, caKey, err := loadCA(dir)
	if err != nil {
		return fmt.Errorf("load CA (run 'gencert ca' first): %w", err)
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return fmt.Errorf("generate leaf key: %w", err)
	}

	serial, err := randomSerial()
	if err != nil {
		return err
	}

	template := &x509.Certificate{
		SerialNumber: serial,
		Subject:      pkix.Name{CommonName: service},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(validFor),
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
	}
	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
		} else {
			template.DNSNames = append(template.DNSNames, h)
		}
	}

	der, err := x509.CreateCertificate(rand.Reader, template, caCert, &key.PublicKey, caKey)
	if err != nil {
		return fmt.Errorf("create leaf certificate for %s: %w", service, err)
	}

	if err := writeCertAndKey(dir, service, der, key); err != nil {
		return err
	}
	fmt.Printf("wrote %s and %s\n", filepath.Join(dir, service+".crt"), filepath.Join(dir, service+".key"))
	return nil
}

func loadCA(dir string) (*x509.Certificate, *ecdsa.PrivateKey, error) {
	certPEM, err := os.ReadFile(filepath.Join(dir, "ca.crt"))
	if err != nil {
		return nil, nil, err
	}
	keyPEM, err := os.ReadFile(filepath.Join(dir, "ca.key"))
	if err != nil {
		return nil, nil, err
	}

	certBlock, _ := pem.Decode(certPEM)
	cert, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, nil, err
	}

	keyBlock, _ := pem.Decode(keyPEM)
	key, err := x509.ParseECPrivateKey(keyBlock.Bytes)
	if err != nil {
		return nil, nil, err
	}

	return cert, key, nil
}

func writeCertAndKey(dir, name string, der []byte, key *ecdsa.PrivateKey) error {
	certOut, err := os.OpenFile(filepath.Join(dir, name+".crt"), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer certOut.Close()
	if err := pem.Encode(certOut, &pem.Block{Type: "CERTIFICATE", Bytes: der}); err != nil {
		return err
	}

	keyBytes, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return err
	}
	keyOut, err := os.OpenFile(filepath.Join(dir, name+".key"), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer keyOut.Close()
	return pem.Encode(keyOut, &pem.Block{Type: "EC PRIVATE KEY", Bytes: keyBytes})
}

func randomSerial() (*big.Int, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	return rand.Int(rand.Reader, limit)
}
