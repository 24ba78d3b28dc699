package apple

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dmitrijs2005/clubcard/internal/cards"
	"github.com/dmitrijs2005/clubcard/internal/identity"
)

// AssetFiles maps the name inside the pass to the path under the resources
// directory.
var AssetFiles = map[string]string{
	"logo.png":              "assets/doc.png",
	"logo@2x.png":           "assets/doc@2x.png",
	"logo@3x.png":           "assets/doc@3x.png",
	"icon.png":              "assets/doc_il.png",
	"thumbnail.png":         "assets/doc_il.png",
	"thumbnail@2x.png":      "assets/doc_il@2x.png",
	"thumbnail@3x.png":      "assets/doc_il@3x.png",
	"en.lproj/pass.strings": "en.lproj/pass.strings",
	"he.lproj/pass.strings": "he.lproj/pass.strings",
}

// LoadAssets reads AssetFiles from dir.
func LoadAssets(dir string) (map[string][]byte, error) {
	assets := make(map[string][]byte, len(AssetFiles))
	for name, rel := range AssetFiles {
		b, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			return nil, fmt.Errorf("read asset %s: %w", name, err)
		}
		assets[name] = b
	}
	return assets, nil
}

// zipTime is stamped on every entry so identical input gives an identical
// archive layout.
var zipTime = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// Builder renders cards into signed .pkpass archives.
type Builder struct {
	ids    Identifiers
	assets map[string][]byte
	signer *Signer
}

func NewBuilder(ids Identifiers, assets map[string][]byte, signer *Signer) *Builder {
	return &Builder{ids: ids, assets: assets, signer: signer}
}

// Build implements cards.PassBuilder.
func (b *Builder) Build(card cards.Card, id identity.Identity) ([]byte, error) {
	passJSON, err := json.Marshal(NewPass(b.ids, card, id))
	if err != nil {
		return nil, fmt.Errorf("marshal pass.json: %w", err)
	}

	files := make(map[string][]byte, len(b.assets)+3)
	for name, data := range b.assets {
		files[name] = data
	}
	files["pass.json"] = passJSON

	manifest, err := Manifest(files)
	if err != nil {
		return nil, err
	}
	files["manifest.json"] = manifest

	signature, err := b.signer.Sign(manifest)
	if err != nil {
		return nil, fmt.Errorf("sign manifest: %w", err)
	}
	files["signature"] = signature

	return zipFiles(files)
}

// Manifest returns manifest.json: the SHA-1 hex digest of every file.
func Manifest(files map[string][]byte) ([]byte, error) {
	sums := make(map[string]string, len(files))
	for name, data := range files {
		sum := sha1.Sum(data)
		sums[name] = hex.EncodeToString(sum[:])
	}
	return json.Marshal(sums)
}

func zipFiles(files map[string][]byte) ([]byte, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: zipTime,
		})
		if err != nil {
			return nil, fmt.Errorf("zip %s: %w", name, err)
		}
		if _, err := w.Write(files[name]); err != nil {
			return nil, fmt.Errorf("zip %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}
