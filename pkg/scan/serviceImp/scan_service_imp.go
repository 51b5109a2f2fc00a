package serviceImp

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"towergrow/entities"
	"towergrow/pkg/ai"
	"towergrow/pkg/scan/service"
	"towergrow/pkg/tower/repository"
)

type refresher interface {
	Evaluate(uid string) ([]entities.Notification, error)
}

type scanSvc struct {
	slots  repository.SlotRepository
	client ai.Client
	notify refresher
	now    func() time.Time
}

func New(slots repository.SlotRepository, client ai.Client, notify refresher, now func() time.Time) service.ScanService {
	if now == nil {
		now = time.Now
	}
	return &scanSvc{slots: slots, client: client, notify: notify, now: now}
}

func (s *scanSvc) Scan(uid string, index int, imageBase64 string) (*service.Outcome, error) {
	slot, err := s.slots.ByIndex(uid, index)
	if err != nil {
		return nil, err
	}
	if !slot.Planted() {
		return nil, fmt.Errorf("slot %d is empty", index)
	}

	res, err := s.client.Identify(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("identify: %w", err)
	}

	diagnosis, score := Interpret(res, slot.Crop)

	slot.Health = score
	slot.ScanHistory = append(slot.ScanHistory, entities.ScanResult{
		Date:        s.now().Format("2006-01-02"),
		Diagnosis:   diagnosis,
		HealthScore: score,
	})
	if err := s.slots.Save(slot); err != nil {
		return nil, err
	}

	if s.notify != nil {
		if _, err := s.notify.Evaluate(uid); err != nil {
			slog.Warn("notification refresh after scan failed", "uid", uid, "error", err)
		}
	}

	return &service.Outcome{
		Slot:           slot,
		Diagnosis:      diagnosis,
		HealthScore:    score,
		Identification: res,
	}, nil
}

// Interpret maps an identification result onto a diagnosis line and a
// health score for the scan history.
//
// Scoring: a confirmed-healthy plant lands in 85-100 scaled by confidence;
// a diseased one in 20-80 scaled by the worst disease probability; with no
// health assessment the score rides on identification confidence alone.
func Interpret(res *ai.IdentifyResult, crop *entities.CropType) (string, int) {
	var score int
	switch {
	case res.IsHealthy != nil && *res.IsHealthy:
		score = int(math.Round(85 + res.Confidence*15))
	case res.IsHealthy != nil && !*res.IsHealthy && len(res.Diseases) > 0:
		worst := 0.0
		for _, d := range res.Diseases {
			if d.Probability > worst {
				worst = d.Probability
			}
		}
		score = int(math.Round(80 - worst*60))
		if score < 20 {
			score = 20
		}
	default:
		score = int(math.Round(60 + res.Confidence*40))
	}

	pct := int(math.Round(res.Confidence * 100))
	cropName := ""
	if crop != nil {
		cropName = crop.Name
	}

	var diagnosis string
	switch {
	case res.Confidence >= 0.5:
		match := namesMatch(res, cropName)
		switch {
		case res.IsHealthy != nil && *res.IsHealthy:
			if match {
				diagnosis = fmt.Sprintf("✅ Identified as %s (%d%% match). Plant is healthy!", res.CommonName, pct)
			} else {
				diagnosis = fmt.Sprintf("Identified as %s (%s). Expected %s. Plant looks healthy.", res.CommonName, res.Family, orUnknown(cropName))
			}
		case len(res.Diseases) > 0:
			top := res.Diseases[0]
			diagnosis = fmt.Sprintf("⚠️ %s — %s detected (%d%% probability).", res.CommonName, top.Name, int(math.Round(top.Probability*100)))
		default:
			if match {
				diagnosis = fmt.Sprintf("Identified as %s (%d%% match).", res.CommonName, pct)
			} else {
				diagnosis = fmt.Sprintf("Identified as %s (%s). Expected %s.", res.CommonName, res.Family, orUnknown(cropName))
			}
		}
	case res.Confidence >= 0.2:
		diagnosis = fmt.Sprintf("Possible %s (%d%% confidence). Review recommended.", res.CommonName, pct)
	default:
		diagnosis = fmt.Sprintf("Low confidence identification (%d%%). Clearer photo recommended.", pct)
	}

	return diagnosis, score
}

func namesMatch(res *ai.IdentifyResult, cropName string) bool {
	if cropName == "" {
		return false
	}
	crop := strings.ToLower(cropName)
	common := strings.ToLower(res.CommonName)
	species := strings.ToLower(res.Species)
	return strings.Contains(common, crop) ||
		strings.Contains(species, crop) ||
		strings.Contains(crop, common)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
