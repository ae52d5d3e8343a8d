package program

import (
	_ "embed"
	"os"

	"rebate-ledger/internal/domain/bundle"
	"rebate-ledger/internal/domain/reward"
	"rebate-ledger/internal/domain/tier"
	"rebate-ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultProgram []byte

var ErrUnknownPrizeTier = errs.NewValidation("prize tier target does not match any tier")

// Program is the static configuration shared by every owner.
type Program struct {
	Tiers   *tier.Table
	Prizes  *reward.Catalog
	Catalog *bundle.Catalog
}

type rawProgram struct {
	Tiers []struct {
		Name   string          `yaml:"name"`
		Target decimal.Decimal `yaml:"target"`
		Prize  string          `yaml:"prize"`
	} `yaml:"tiers"`
	Prizes []struct {
		ID         string          `yaml:"id"`
		TierTarget decimal.Decimal `yaml:"tierTarget"`
		Name       string          `yaml:"name"`
		Detail     string          `yaml:"detail"`
	} `yaml:"prizes"`
	Catalog []struct {
		Manufacturer string `yaml:"manufacturer"`
		Categories   []struct {
			Name  string `yaml:"name"`
			Items []struct {
				SKU   string          `yaml:"sku"`
				Name  string          `yaml:"name"`
				Price decimal.Decimal `yaml:"price"`
			} `yaml:"items"`
		} `yaml:"categories"`
	} `yaml:"catalog"`
}

// Load reads the program from path, or the embedded default when path is empty.
func Load(path string) (*Program, error) {
	if path == "" {
		return Parse(defaultProgram)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "read program file %s", path)
	}
	return Parse(b)
}

func Default() (*Program, error) {
	return Parse(defaultProgram)
}

func Parse(b []byte) (*Program, error) {
	var raw rawProgram
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, errs.Wrap(err, "decode program yaml")
	}

	tiers := make([]tier.Tier, 0, len(raw.Tiers))
	for _, t := range raw.Tiers {
		tiers = append(tiers, tier.Tier{Name: t.Name, Target: t.Target, Prize: t.Prize})
	}
	table, err := tier.NewTable(tiers)
	if err != nil {
		return nil, errs.Wrap(err, "tiers")
	}

	prizes := make([]reward.Prize, 0, len(raw.Prizes))
	for _, p := range raw.Prizes {
		if !table.HasTarget(p.TierTarget) {
			return nil, errs.Wrapf(ErrUnknownPrizeTier, "prize %q target %s", p.ID, p.TierTarget)
		}
		prizes = append(prizes, reward.Prize{ID: p.ID, TierTarget: p.TierTarget, Name: p.Name, Detail: p.Detail})
	}
	prizeCatalog, err := reward.NewCatalog(prizes)
	if err != nil {
		return nil, errs.Wrap(err, "prizes")
	}

	manufacturers := make([]bundle.Manufacturer, 0, len(raw.Catalog))
	for _, m := range raw.Catalog {
		mfg := bundle.Manufacturer{Name: m.Manufacturer}
		for _, c := range m.Categories {
			cat := bundle.Category{Name: c.Name}
			for _, it := range c.Items {
				cat.Items = append(cat.Items, bundle.Item{SKU: it.SKU, Name: it.Name, Price: it.Price})
			}
			mfg.Categories = append(mfg.Categories, cat)
		}
		manufacturers = append(manufacturers, mfg)
	}
	catalog, err := bundle.NewCatalog(manufacturers)
	if err != nil {
		return nil, errs.Wrap(err, "catalog")
	}

	return &Program{Tiers: table, Prizes: prizeCatalog, Catalog: catalog}, nil
}
