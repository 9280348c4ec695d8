package fares

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gilby125/award-distance/pkg/source"
)

// Column names of the award chart CSV header.
const (
	ColStartZone             = "StartZone"
	ColEndZone               = "EndZone"
	ColBandStart             = "DistanceBandMilesStart"
	ColBandEnd               = "DistanceBandMilesEnd"
	ColACEconomy             = "ACEconomy"
	ColACPremiumEconomy      = "ACPremiumEconomy"
	ColACBusiness            = "ACBusiness"
	ColACFirst               = "ACFirst"
	ColPartnerEconomy        = "PartnerEconomy"
	ColPartnerPremiumEconomy = "PartnerPremiumEconomy"
	ColPartnerBusiness       = "PartnerBusiness"
	ColPartnerFirst          = "PartnerFirst"
)

// Columns lists every column the loader requires.
var Columns = []string{
	ColStartZone, ColEndZone, ColBandStart, ColBandEnd,
	ColACEconomy, ColACPremiumEconomy, ColACBusiness, ColACFirst,
	ColPartnerEconomy, ColPartnerPremiumEconomy, ColPartnerBusiness, ColPartnerFirst,
}

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// Load reads an award chart CSV. The first record is the header; columns may
// appear in any order and extra columns are ignored. Cell values are kept
// exactly as written.
func Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	pos := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}
	for _, col := range Columns {
		if _, ok := pos[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read chart row: %w", err)
		}
		get := func(col string) string { return rec[pos[col]] }
		rows = append(rows, Row{
			StartZone:              get(ColStartZone),
			EndZone:                get(ColEndZone),
			DistanceBandMilesStart: get(ColBandStart),
			DistanceBandMilesEnd:   get(ColBandEnd),
			ACEconomy:              get(ColACEconomy),
			ACPremiumEconomy:       get(ColACPremiumEconomy),
			ACBusiness:             get(ColACBusiness),
			ACFirst:                get(ColACFirst),
			PartnerEconomy:         get(ColPartnerEconomy),
			PartnerPremiumEconomy:  get(ColPartnerPremiumEconomy),
			PartnerBusiness:        get(ColPartnerBusiness),
			PartnerFirst:           get(ColPartnerFirst),
		})
	}

	return NewTable(rows), nil
}

// LoadFile loads an award chart from a file path or http(s) URL.
func LoadFile(ctx context.Context, opener *source.Opener, location string) (*Table, error) {
	rc, err := opener.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	t, err := Load(rc)
	if err != nil {
		return nil, fmt.Errorf("load fare chart %s: %w", location, err)
	}
	return t, nil
}
