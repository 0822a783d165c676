package feed

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/1ns0mn1a7/seller-apis/core/transport"
	"github.com/1ns0mn1a7/seller-apis/core/utils"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// oleSignature starts every OLE compound document, the container format
// of legacy BIFF .xls workbooks. XLSX-family files are ZIP-based and
// never start with it.
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Record is one supplier feed row. Quantity and Price stay free text;
// normalization is the reconciliation engine's job.
type Record struct {
	// Code is the supplier SKU, string-coerced.
	Code string
	// Quantity is the raw quantity token (may be a sentinel like ">10").
	Quantity string
	// Price is the raw price string (e.g. "5'990.00 руб.").
	Price string
}

// Loader downloads and parses the supplier stock sheet.
type Loader struct {
	cfg   Config
	httpc *http.Client
	log   *zap.Logger
}

// NewLoader creates a loader for the configured feed location.
func NewLoader(cfg Config, log *zap.Logger) *Loader {
	return &Loader{
		cfg:   cfg,
		httpc: transport.NewHTTPClient(cfg.TimeoutSeconds),
		log:   log,
	}
}

// Fetch downloads the feed archive and returns its raw bytes.
func (l *Loader) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := l.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download feed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &transport.APIError{Status: resp.StatusCode, Path: l.cfg.URL}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}
	l.log.Debug("feed downloaded", zap.Int("bytes", len(raw)))
	return raw, nil
}

// Parse extracts the spreadsheet from the archive bytes and returns the
// data rows below the configured header row.
func (l *Loader) Parse(archive []byte) ([]Record, error) {
	entry, err := l.extract(archive)
	if err != nil {
		return nil, err
	}
	rows, err := l.sheetRows(entry)
	if err != nil {
		return nil, err
	}
	if len(rows) <= l.cfg.HeaderRow {
		return nil, fmt.Errorf("spreadsheet has %d rows, header expected at row %d", len(rows), l.cfg.HeaderRow)
	}

	header := rows[l.cfg.HeaderRow]
	codeCol, err := columnIndex(header, l.cfg.CodeColumn)
	if err != nil {
		return nil, err
	}
	qtyCol, err := columnIndex(header, l.cfg.QuantityColumn)
	if err != nil {
		return nil, err
	}
	priceCol, err := columnIndex(header, l.cfg.PriceColumn)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows)-l.cfg.HeaderRow-1)
	for _, row := range rows[l.cfg.HeaderRow+1:] {
		code := utils.ToString(cell(row, codeCol))
		if strings.TrimSpace(code) == "" {
			continue
		}
		records = append(records, Record{
			Code:     code,
			Quantity: cell(row, qtyCol),
			Price:    cell(row, priceCol),
		})
	}
	return records, nil
}

// extract reads the configured spreadsheet entry out of the ZIP archive.
func (l *Loader) extract(archive []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open feed archive: %w", err)
	}

	for _, f := range zr.File {
		if f.Name != l.cfg.File {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in archive: %w", f.Name, err)
		}
		defer func() { _ = rc.Close() }()

		entry, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read %s in archive: %w", f.Name, err)
		}
		return entry, nil
	}
	return nil, fmt.Errorf("archive has no entry %s", l.cfg.File)
}

// sheetRows reads the first sheet of the workbook as a row grid. The
// supplier ships legacy BIFF .xls workbooks; XLSX-family entries are
// accepted too.
func (l *Loader) sheetRows(entry []byte) ([][]string, error) {
	if bytes.HasPrefix(entry, oleSignature) {
		return l.biffRows(entry)
	}
	return l.xlsxRows(entry)
}

func (l *Loader) biffRows(entry []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(entry))
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet %s: %w", l.cfg.File, err)
	}
	sh, err := wb.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("read spreadsheet %s: %w", l.cfg.File, err)
	}

	rows := make([][]string, 0, sh.GetNumberRows())
	for i := 0; i <= sh.GetNumberRows(); i++ {
		r, err := sh.GetRow(i)
		if err != nil || r == nil {
			// Gap rows keep their index so the header offset holds.
			rows = append(rows, nil)
			continue
		}
		cells := r.GetCols()
		vals := make([]string, len(cells))
		for j, c := range cells {
			vals[j] = c.GetString()
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

func (l *Loader) xlsxRows(entry []byte) ([][]string, error) {
	sheet, err := excelize.OpenReader(bytes.NewReader(entry))
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet %s: %w", l.cfg.File, err)
	}
	defer func() { _ = sheet.Close() }()

	sheets := sheet.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no sheets", l.cfg.File)
	}
	rows, err := sheet.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("feed header has no column %q", name)
}

// cell returns the value at idx; trailing empty cells are trimmed by the
// spreadsheet reader, so short rows read as empty.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
