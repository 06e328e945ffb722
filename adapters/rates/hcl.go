// Package rates loads per-carrier rate cards from HCL files.
//
// A rate card file looks like:
//
//	carrier "smsa" {
//	  service "express" {
//	    base       = 20
//	    profit     = 5
//	    max_weight = 10
//	    tax_rate   = 0.15
//	  }
//	}
package rates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shipops/core/types"
	"shipops/internal/errors"
	"shipops/internal/logging"
)

type ratesFile struct {
	Carriers []carrierBlock `hcl:"carrier,block"`
}

type carrierBlock struct {
	Name     string         `hcl:"name,label"`
	Services []serviceBlock `hcl:"service,block"`
}

type serviceBlock struct {
	Name               string   `hcl:"name,label"`
	Base               float64  `hcl:"base,optional"`
	Profit             float64  `hcl:"profit,optional"`
	MaxWeight          float64  `hcl:"max_weight,optional"`
	AdditionalKgBase   float64  `hcl:"additional_kg_base,optional"`
	AdditionalKgProfit float64  `hcl:"additional_kg_profit,optional"`
	CODBase            float64  `hcl:"cod_base,optional"`
	CODProfit          float64  `hcl:"cod_profit,optional"`
	RTOBase            float64  `hcl:"rto_base,optional"`
	RTOProfit          float64  `hcl:"rto_profit,optional"`
	PickupBase         float64  `hcl:"pickup_base,optional"`
	PickupProfit       float64  `hcl:"pickup_profit,optional"`
	TaxRate            *float64 `hcl:"tax_rate,optional"`
}

// Load reads rate cards from an .hcl file, or from every .hcl file
// under a directory, and validates each card.
func Load(path string) ([]types.RateCard, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Rates("rate card path is not readable", err)
	}

	var files []string
	if info.IsDir() {
		err := filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() && strings.HasSuffix(p, ".hcl") {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Rates("failed to walk rate card directory", err)
		}
	} else {
		files = []string{path}
	}

	if len(files) == 0 {
		return nil, errors.Newf(errors.TypeRates, "no .hcl rate card files under %s", path)
	}

	parser := hclparse.NewParser()
	var cards []types.RateCard
	for _, file := range files {
		fileCards, err := loadFile(parser, file)
		if err != nil {
			return nil, err
		}
		cards = append(cards, fileCards...)
	}

	logging.Info("rate cards loaded",
		zap.Int("cards", len(cards)), zap.Int("files", len(files)))
	return cards, nil
}

func loadFile(parser *hclparse.Parser, path string) ([]types.RateCard, error) {
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("invalid HCL in %s", path), diags)
	}

	var parsed ratesFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("invalid rate card schema in %s", path), diags)
	}

	var cards []types.RateCard
	for _, carrier := range parsed.Carriers {
		for _, service := range carrier.Services {
			card := toRateCard(carrier.Name, service)
			if err := card.Validate(); err != nil {
				return nil, errors.Rates(fmt.Sprintf("invalid rate card in %s", path), err)
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

func toRateCard(carrier string, s serviceBlock) types.RateCard {
	card := types.RateCard{
		Key:                types.NewRateKey(carrier, s.Name),
		Base:               decimal.NewFromFloat(s.Base),
		Profit:             decimal.NewFromFloat(s.Profit),
		MaxWeight:          decimal.NewFromFloat(s.MaxWeight),
		AdditionalKgBase:   decimal.NewFromFloat(s.AdditionalKgBase),
		AdditionalKgProfit: decimal.NewFromFloat(s.AdditionalKgProfit),
		CODBase:            decimal.NewFromFloat(s.CODBase),
		CODProfit:          decimal.NewFromFloat(s.CODProfit),
		RTOBase:            decimal.NewFromFloat(s.RTOBase),
		RTOProfit:          decimal.NewFromFloat(s.RTOProfit),
		PickupBase:         decimal.NewFromFloat(s.PickupBase),
		PickupProfit:       decimal.NewFromFloat(s.PickupProfit),
	}
	if s.TaxRate != nil {
		tax := decimal.NewFromFloat(*s.TaxRate)
		card.TaxRate = &tax
	}
	return card
}
