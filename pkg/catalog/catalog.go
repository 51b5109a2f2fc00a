package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"towergrow/entities"
)

// Catalog resolves crop names to their static catalog entries.
type Catalog interface {
	All() []entities.CropType
	Find(name string) (entities.CropType, bool)
}

type catalog struct {
	crops []entities.CropType
	byKey map[string]int
}

// Load returns the built-in catalog, with optional CSV and XLSX overlays.
// Overlay rows replace built-in crops by name and may add new ones.
// Empty paths are skipped; a missing overlay file is a hard error so a typo'd
// path does not silently fall back to defaults.
func Load(cropsCSV, cropsXLSX string) (Catalog, error) {
	c := &catalog{}
	c.replaceAll(defaultCrops)

	if cropsCSV != "" {
		rows, err := loadCSV(cropsCSV)
		if err != nil {
			return nil, fmt.Errorf("crops csv: %w", err)
		}
		c.overlay(rows)
	}
	if cropsXLSX != "" {
		rows, err := loadXLSX(cropsXLSX)
		if err != nil {
			return nil, fmt.Errorf("crops xlsx: %w", err)
		}
		c.overlay(rows)
	}

	if len(c.crops) == 0 {
		return nil, errors.New("no crops loaded")
	}
	return c, nil
}

func (c *catalog) All() []entities.CropType {
	out := make([]entities.CropType, len(c.crops))
	copy(out, c.crops)
	return out
}

func (c *catalog) Find(name string) (entities.CropType, bool) {
	i, ok := c.byKey[normName(name)]
	if !ok {
		return entities.CropType{}, false
	}
	return c.crops[i], true
}

func (c *catalog) replaceAll(crops []entities.CropType) {
	c.crops = append([]entities.CropType(nil), crops...)
	c.byKey = make(map[string]int, len(crops))
	for i, cr := range c.crops {
		c.byKey[normName(cr.Name)] = i
	}
}

func (c *catalog) overlay(rows []entities.CropType) {
	for _, cr := range rows {
		if cr.Name == "" || cr.GrowDays <= 0 {
			continue // skip invalid rows
		}
		if i, ok := c.byKey[normName(cr.Name)]; ok {
			c.crops[i] = cr
		} else {
			c.crops = append(c.crops, cr)
			c.byKey[normName(cr.Name)] = len(c.crops) - 1
		}
	}
}

func normName(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func loadCSV(path string) ([]entities.CropType, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return nil, err
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cName := findAny("Name", "crop", "crop_name")
	cIcon := findAny("Icon", "emoji", "glyph")
	cDays := findAny("GrowDays", "grow_days", "days", "days_to_harvest")
	cColor := findAny("Color", "display_color", "hex")

	if cName == -1 || cDays == -1 {
		return nil, fmt.Errorf("crops csv missing required columns, found headers: %v (need at least Name, GrowDays)", head)
	}

	var out []entities.CropType
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		days, _ := strconv.Atoi(get(cDays))
		out = append(out, entities.CropType{
			Name:     get(cName),
			Icon:     get(cIcon),
			GrowDays: days,
			Color:    get(cColor),
		})
	}
	return out, nil
}

func loadXLSX(path string) ([]entities.CropType, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheet := "Crops"
	if idx, _ := x.GetSheetIndex(sheet); idx < 0 {
		sheet = x.GetSheetName(0)
	}
	rows, err := x.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	// Fixed column order Name|Icon|GrowDays|Color; the header row is skipped.
	var out []entities.CropType
	for _, rec := range rows[1:] {
		get := func(i int) string {
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		days, _ := strconv.Atoi(get(2))
		out = append(out, entities.CropType{Name: get(0), Icon: get(1), GrowDays: days, Color: get(3)})
	}
	return out, nil
}
