package apple

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/clubcard/internal/cards"
	"github.com/dmitrijs2005/clubcard/internal/identity"
	"github.com/smallstep/pkcs7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIDs = Identifiers{
	TeamIdentifier:     "TEAM123",
	PassTypeIdentifier: "pass.com.example.club",
	OrganizationName:   "DOC Israel",
}

func newTestSigner(t *testing.T) *Signer {
	t.Helper()
	_, key, certPEM := newTestCert(t, "pass")
	_, _, wwdrPEM := newTestCert(t, "wwdr")
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})

	s, err := NewSignerFromPEM(certPEM, escape(keyPEM), "", wwdrPEM)
	require.NoError(t, err)
	return s
}

func unzip(t *testing.T, b []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	require.NoError(t, err)

	files := map[string][]byte{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		files[f.Name] = data
	}
	return files
}

func TestNewPass_Layout(t *testing.T) {
	card := cards.Card{
		HebrewFullName:       "ישראל ישראלי",
		EnglishFullName:      "Israel Israeli",
		MembershipYear:       "2026",
		MembershipExpiration: "2027-10-31",
		MemberCode:           "12345",
		MotorcycleModel:      "Monster",
		RegistrationType:     "יחיד",
	}
	id := identity.Derive("a@b.c", "+972505600011")

	p := NewPass(testIDs, card, id)

	assert.Equal(t, id.MemberID, p.SerialNumber)
	assert.Equal(t, "rgb(204,0,0)", p.BackgroundColor)
	assert.Equal(t, "2026", p.Generic.HeaderFields[0].Value)
	assert.Equal(t, "12345", p.Generic.PrimaryFields[0].Value)
	assert.Equal(t, "Israel Israeli", p.Generic.SecondaryFields[0].Value)
	assert.Equal(t, "Monster", p.Generic.AuxiliaryFields[1].Value)
	assert.Equal(t, "Membership valid until 2027-10-31", p.Generic.BackFields[0].Value)

	card.Revoked = true
	p = NewPass(testIDs, card, id)
	assert.Equal(t, "Membership expired - חברות לא בתוקף", p.Generic.BackFields[0].Value)
}

func TestBuilder_BuildSignedArchive(t *testing.T) {
	assets := map[string][]byte{
		"icon.png":              []byte("icon"),
		"en.lproj/pass.strings": []byte(`"year" = "Year";`),
	}
	b := NewBuilder(testIDs, assets, newTestSigner(t))
	id := identity.Derive("a@b.c", "+972505600011")

	out, err := b.Build(cards.Card{EnglishFullName: "Israel Israeli", MembershipExpiration: "2027-10-31"}, id)
	require.NoError(t, err)

	files := unzip(t, out)
	require.Contains(t, files, "pass.json")
	require.Contains(t, files, "manifest.json")
	require.Contains(t, files, "signature")
	assert.Equal(t, []byte("icon"), files["icon.png"])

	var pass Pass
	require.NoError(t, json.Unmarshal(files["pass.json"], &pass))
	assert.Equal(t, id.MemberID, pass.SerialNumber)
	assert.Equal(t, "TEAM123", pass.TeamIdentifier)

	var manifest map[string]string
	require.NoError(t, json.Unmarshal(files["manifest.json"], &manifest))
	assert.Len(t, manifest, 3)
	for name, sum := range manifest {
		h := sha1.Sum(files[name])
		assert.Equal(t, hex.EncodeToString(h[:]), sum, name)
	}

	p7, err := pkcs7.Parse(files["signature"])
	require.NoError(t, err)
	p7.Content = files["manifest.json"]
	require.NoError(t, p7.Verify())
	assert.Len(t, p7.Certificates, 2, "pass certificate and WWDR intermediate")
}

func TestManifest_Deterministic(t *testing.T) {
	files := map[string][]byte{"b": []byte("2"), "a": []byte("1")}
	m1, err := Manifest(files)
	require.NoError(t, err)
	m2, err := Manifest(files)
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
}

func TestLoadAssets(t *testing.T) {
	dir := t.TempDir()
	for _, rel := range AssetFiles {
		p := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(rel), 0o600))
	}

	assets, err := LoadAssets(dir)
	require.NoError(t, err)
	assert.Len(t, assets, len(AssetFiles))
	assert.Equal(t, []byte("assets/doc_il.png"), assets["thumbnail.png"])

	require.NoError(t, os.Remove(filepath.Join(dir, "assets/doc.png")))
	_, err = LoadAssets(dir)
	require.Error(t, err)
}
