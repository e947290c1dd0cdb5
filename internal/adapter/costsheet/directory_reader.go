// Package costsheet reads reference projects' cost sheets from a directory.
package costsheet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"devis_batiment/internal/domain/entities"
	"devis_batiment/internal/infrastructure/fileio"
	"devis_batiment/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidRef      = errors.New("invalid cost sheet reference")
	ErrMissingColumns  = errors.New("cost sheet has no item id or amount column")
	ErrUnsupportedFile = fileio.ErrUnsupportedFormat
)

// Header names accepted for each column, compared without case or accents.
// Alternatives are separated by "|".
const (
	itemIDColumns = "id|item_id|catalog_id|code|n°|no|numero|num"
	amountColumns = "amount|montant|montant total|total|prix|cout|montant ht"
	nameColumns   = "name|designation|libelle|travaux|intitule|description"
)

var rxNonAlnum = regexp.MustCompile(`[^\p{L}\p{N}°]+`)

// DirectoryReader resolves a CostSheetRef as a path inside a root directory.
type DirectoryReader struct {
	root      string
	headerRow int
}

var _ interfaces.ICostSheetReader = (*DirectoryReader)(nil)

func NewDirectoryReader(root string, headerRow int) *DirectoryReader {
	if headerRow <= 0 {
		headerRow = 1
	}
	return &DirectoryReader{root: root, headerRow: headerRow}
}

// Read parses the sheet and keeps the rows whose item id and amount are
// numbers. Totals, section titles and blank amounts are skipped.
func (d *DirectoryReader) Read(ctx context.Context, ref entities.CostSheetRef) ([]entities.CostSheetRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := d.resolve(ref)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := fileio.ReadAnyMaps(f, path, d.headerRow)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	idKey := resolveKey(records[0], itemIDColumns)
	amountKey := resolveKey(records[0], amountColumns)
	nameKey := resolveKey(records[0], nameColumns)
	if idKey == "" || amountKey == "" || idKey == amountKey {
		return nil, fmt.Errorf("%s: %w", ref, ErrMissingColumns)
	}

	rows := make([]entities.CostSheetRow, 0, len(records))
	skipped := 0
	for _, rec := range records {
		id, err := strconv.Atoi(strings.TrimSpace(rec[idKey]))
		if err != nil {
			skipped++
			continue
		}
		amount, ok := fileio.ParseAmount(rec[amountKey])
		if !ok {
			skipped++
			continue
		}
		row := entities.CostSheetRow{ItemID: id, Amount: amount}
		if nameKey != "" {
			row.ItemName = strings.TrimSpace(rec[nameKey])
		}
		rows = append(rows, row)
	}

	log.Debug().Str("sheet", string(ref)).Int("rows", len(rows)).Int("skipped", skipped).Msg("[costsheet][reader] sheet parsed")
	return rows, nil
}

// resolve keeps the reference inside the root directory.
func (d *DirectoryReader) resolve(ref entities.CostSheetRef) (string, error) {
	name := strings.TrimSpace(string(ref))
	if name == "" || filepath.IsAbs(name) {
		return "", ErrInvalidRef
	}
	clean := filepath.Clean(filepath.FromSlash(name))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", ErrInvalidRef
	}
	if !fileio.Supported(clean) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFile, name)
	}
	return filepath.Join(d.root, clean), nil
}

// normHeaderKey lowercases, strips accents and collapses separators.
func normHeaderKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ", "_", " ").Replace(s)
	s = rxNonAlnum.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveKey finds the record key matching one of the wanted names: exact
// match first, then normalised match, then the longest normalised containment.
func resolveKey(rec map[string]string, want string) string {
	alts := strings.Split(want, "|")
	for _, a := range alts {
		if _, ok := rec[a]; ok {
			return a
		}
	}

	normAlts := make([]string, len(alts))
	for i, a := range alts {
		normAlts[i] = normHeaderKey(a)
	}

	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, n := range normAlts {
		for _, k := range keys {
			if normHeaderKey(k) == n {
				return k
			}
		}
	}

	bestKey, bestScore := "", 0
	for _, k := range keys {
		nk := normHeaderKey(k)
		for _, n := range normAlts {
			if len(n) < 3 {
				continue
			}
			if strings.Contains(nk, n) && len(n) > bestScore {
				bestKey, bestScore = k, len(n)
			}
		}
	}
	return bestKey
}
