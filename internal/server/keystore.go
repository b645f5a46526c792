package server

import (
	"crypto"
	"crypto/tls"
	"crypto/x509"
	_ "embed"
	"fmt"

	"software.sslmate.com/src/go-pkcs12"
)

// The key material ships bundled with the binary: a PKCS#12 keystore and
// the passphrase protecting it. The decode operation abstracts the format;
// callers only see a ready *tls.Config.
var (
	//go:embed certs/certificate.p12
	keystore []byte
)

const keystorePassphrase = "helidon"

// loadTLSConfig produces the TLS context from the bundled keystore.
// Any load or decrypt failure wraps [ErrKeystore] and must abort startup.
func loadTLSConfig() (*tls.Config, error) {
	return decodeKeystore(keystore, keystorePassphrase)
}

func decodeKeystore(data []byte, passphrase string) (*tls.Config, error) {
	key, cert, err := pkcs12.Decode(data, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrKeystore, err)
	}

	if err := verifyKeyPair(cert, key); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrKeystore, err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{{
			Certificate: [][]byte{cert.Raw},
			PrivateKey:  key,
			Leaf:        cert,
		}},
	}, nil
}

// verifyKeyPair checks that the decoded private key matches the certificate
// before the listener ever offers it.
func verifyKeyPair(cert *x509.Certificate, key any) error {
	signer, ok := key.(interface{ Public() crypto.PublicKey })
	if !ok {
		return fmt.Errorf("unsupported private key type %T", key)
	}

	type equaler interface{ Equal(x crypto.PublicKey) bool }
	pub, ok := cert.PublicKey.(equaler)
	if !ok {
		return fmt.Errorf("unsupported public key type %T", cert.PublicKey)
	}
	if !pub.Equal(signer.Public()) {
		return fmt.Errorf("private key does not match certificate")
	}
	return nil
}
