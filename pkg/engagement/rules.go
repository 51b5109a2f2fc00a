// Package engagement derives the user-facing notification set from garden
// state. Generation is deterministic in everything that matters for
// deduplication (sourceKeys, types, priorities); wording of social/tip items
// draws from the injected random source.
package engagement

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"towergrow/entities"
	"towergrow/pkg/progress"
)

// MaxNotifications caps the final ranked list.
const MaxNotifications = 10

// scanOverdueDays triggers the rescan reminder; slots younger than this are
// left alone.
const scanOverdueDays = 3

type socialTemplate struct{ title, body string }

var socialTemplates = []socialTemplate{
	{"Your neighborhood is growing!", "%d growers in your area planted new crops this week."},
	{"You're not alone!", "%d hydro enthusiasts logged water chemistry today."},
	{"Community milestone!", "Local growers harvested %d crops this month."},
	{"Growing trend!", "%d growers achieved new streak records this week."},
	{"Hydro community buzz!", "%d towers were scanned with Dr. AI today."},
}

type tip struct {
	icon   string
	body   string
	action entities.NotificationAction
}

var morningTips = []tip{
	{"☀️", "Morning light is ideal for photosynthesis. Check your light setup!", entities.NotificationAction{Tab: entities.TabTower}},
	{"💧", "Morning is the best time to check pH levels. Quick lab log?", entities.NotificationAction{Tab: entities.TabLab}},
	{"🌡️", "Water temperature is most stable in the morning. Great time to measure!", entities.NotificationAction{Tab: entities.TabLab}},
}

var afternoonTips = []tip{
	{"🧪", "EC levels fluctuate during peak growth hours. Good time to check!", entities.NotificationAction{Tab: entities.TabLab}},
	{"🌡️", "Afternoon heat can stress plants. Monitor your tower temperature.", entities.NotificationAction{Tab: entities.TabTower}},
	{"📸", "Plants are most photogenic in natural light. Scan one with Dr. AI!", entities.NotificationAction{Tab: entities.TabAI}},
}

var eveningTips = []tip{
	{"📊", "End of day is perfect for reviewing your plants' progress.", entities.NotificationAction{Tab: entities.TabHome, OpenRewards: true}},
	{"🔥", "Don't forget to log an activity to keep your streak alive!", entities.NotificationAction{Tab: entities.TabHome}},
	{"🌿", "Plants grow while you sleep! Make sure nutrients are topped up.", entities.NotificationAction{Tab: entities.TabHome}},
}

// nudgeTab routes achievement nudges by category. Exhaustive on purpose: a
// new category must pick a destination here.
func nudgeTab(cat entities.AchievementCategory) entities.Tab {
	switch cat {
	case entities.CategoryHarvest:
		return entities.TabTower
	case entities.CategoryCare:
		return entities.TabHome
	case entities.CategoryScience:
		return entities.TabAI
	case entities.CategoryStreak:
		return entities.TabHome
	default:
		return entities.TabHome
	}
}

// Engine generates notification candidates. Clock and randomness are
// injected so tests can pin both.
type Engine struct {
	now func() time.Time
	rnd *rand.Rand
}

// New builds an Engine. A nil clock falls back to time.Now, a nil random
// source to a time-seeded one.
func New(now func() time.Time, rnd *rand.Rand) *Engine {
	if now == nil {
		now = time.Now
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{now: now, rnd: rnd}
}

type params struct {
	sourceKey      string
	icon           string
	title          string
	body           string
	ctaLabel       string
	action         entities.NotificationAction
	expiresInHours int // 0 = never expires
}

func (e *Engine) make(now time.Time, typ entities.NotificationType, p params) entities.Notification {
	n := entities.Notification{
		ID:        p.sourceKey + "-" + uuid.NewString()[:8],
		Type:      typ,
		Icon:      p.icon,
		Title:     p.title,
		Body:      p.body,
		CTALabel:  p.ctaLabel,
		Action:    p.action,
		Priority:  typ.Priority(),
		CreatedAt: now,
		SourceKey: p.sourceKey,
	}
	if p.expiresInHours > 0 {
		exp := now.Add(time.Duration(p.expiresInHours) * time.Hour)
		n.ExpiresAt = &exp
	}
	return n
}

// Generate runs all generation passes and returns the ranked, capped
// candidate list. Dismissed/read/expired filtering belongs to the lifecycle
// store, not here.
func (e *Engine) Generate(slots []entities.Slot, stats entities.RewardStats, lab entities.LabSeries, prev entities.NotifyState) []entities.Notification {
	now := e.now()
	today := DayKey(now)
	hour := now.Hour()

	var out []entities.Notification

	// 1. Per-slot lifecycle. Harvest-ready and critical-health short-circuit
	// the slot entirely; a health warning only suppresses the harvest-1-day
	// reminder. Harvest-3-day and scan-overdue are evaluated regardless, so a
	// plant can be both "3 days out" and "needs a scan" at once.
	for i := range slots {
		s := &slots[i]
		if !s.Planted() {
			continue
		}
		daysLeft := daysUntilHarvest(*s.PlantedDate, s.Crop.GrowDays, now)
		daysPlanted := daysSincePlanting(*s.PlantedDate, now)
		sinceScan, scanned := daysSinceDay(s.LastScanDate(), now)

		if daysLeft == 0 {
			out = append(out, e.make(now, entities.NotificationUrgent, params{
				sourceKey: fmt.Sprintf("harvest-ready-%d", s.Index),
				icon:      "🎉",
				title:     fmt.Sprintf("%s %s is ready!", s.Crop.Icon, s.Crop.Name),
				body:      fmt.Sprintf("Slot #%d — Your %s has reached maturity. Time to harvest!", s.Index+1, s.Crop.Name),
				ctaLabel:  "Harvest now",
				action:    entities.NotificationAction{Tab: entities.TabTower, SlotIndex: ptr(s.Index)},
			}))
			continue
		}

		if s.Health > 0 && s.Health < 50 {
			out = append(out, e.make(now, entities.NotificationUrgent, params{
				sourceKey: fmt.Sprintf("health-critical-%d", s.Index),
				icon:      "🚨",
				title:     fmt.Sprintf("%s %s needs help!", s.Crop.Icon, s.Crop.Name),
				body:      fmt.Sprintf("Slot #%d health is at %d%%. Scan immediately to diagnose.", s.Index+1, s.Health),
				ctaLabel:  "Scan now",
				action:    entities.NotificationAction{Tab: entities.TabAI},
			}))
			continue
		}

		severityMatched := false
		if s.Health > 0 && s.Health < 70 {
			out = append(out, e.make(now, entities.NotificationUrgent, params{
				sourceKey: fmt.Sprintf("health-warning-%d", s.Index),
				icon:      "⚠️",
				title:     fmt.Sprintf("%s %s health dropping", s.Crop.Icon, s.Crop.Name),
				body:      fmt.Sprintf("Slot #%d is at %d%%. Check for issues.", s.Index+1, s.Health),
				ctaLabel:  "Check plant",
				action:    entities.NotificationAction{Tab: entities.TabTower, SlotIndex: ptr(s.Index)},
			}))
			severityMatched = true
		}

		if daysLeft == 1 && !severityMatched {
			out = append(out, e.make(now, entities.NotificationReminder, params{
				sourceKey:      fmt.Sprintf("harvest-1day-%d", s.Index),
				icon:           "⏰",
				title:          fmt.Sprintf("%s %s almost ready!", s.Crop.Icon, s.Crop.Name),
				body:           fmt.Sprintf("Slot #%d — Just 1 day until harvest!", s.Index+1),
				ctaLabel:       "Check growth",
				action:         entities.NotificationAction{Tab: entities.TabTower, SlotIndex: ptr(s.Index)},
				expiresInHours: 24,
			}))
		}

		if daysLeft == 3 {
			out = append(out, e.make(now, entities.NotificationReminder, params{
				sourceKey:      fmt.Sprintf("harvest-3day-%d", s.Index),
				icon:           "📅",
				title:          fmt.Sprintf("%s %s in 3 days", s.Crop.Icon, s.Crop.Name),
				body:           fmt.Sprintf("Slot #%d — Getting close! 3 days to harvest.", s.Index+1),
				ctaLabel:       "View plant",
				action:         entities.NotificationAction{Tab: entities.TabTower, SlotIndex: ptr(s.Index)},
				expiresInHours: 48,
			}))
		}

		if (!scanned || sinceScan >= scanOverdueDays) && daysPlanted >= scanOverdueDays {
			ago := "a while"
			if scanned {
				ago = fmt.Sprintf("%d days", sinceScan)
			}
			out = append(out, e.make(now, entities.NotificationReminder, params{
				sourceKey:      fmt.Sprintf("scan-overdue-%d", s.Index),
				icon:           "📸",
				title:          fmt.Sprintf("%s %s needs a scan", s.Crop.Icon, s.Crop.Name),
				body:           fmt.Sprintf("Slot #%d hasn't been scanned in %s. Check on it!", s.Index+1, ago),
				ctaLabel:       "Scan with Dr. AI",
				action:         entities.NotificationAction{Tab: entities.TabAI},
				expiresInHours: 24,
			}))
		}
	}

	// 2. Achievement deltas and nudges.
	achievements := progress.Achievements(slots, stats)
	prevEarned := map[string]struct{}{}
	for _, id := range prev.PreviousAchievements {
		prevEarned[id] = struct{}{}
	}
	for _, a := range achievements {
		if _, seen := prevEarned[a.ID]; a.Earned && !seen {
			out = append(out, e.make(now, entities.NotificationCelebration, params{
				sourceKey: "achievement-" + a.ID,
				icon:      a.Icon,
				title:     "Achievement unlocked!",
				body:      fmt.Sprintf("%s — %s", a.Name, a.Description),
				ctaLabel:  "See your badge",
				action:    entities.NotificationAction{Tab: entities.TabHome, OpenRewards: true},
			}))
		}
		if !a.Earned && a.Target > 0 && float64(a.Current)/float64(a.Target) >= 0.5 {
			out = append(out, e.make(now, entities.NotificationTip, params{
				sourceKey:      "ach-nudge-" + a.ID,
				icon:           "🎯",
				title:          "Almost there!",
				body:           fmt.Sprintf("%d more to unlock %q — %s", a.Target-a.Current, a.Name, a.Description),
				ctaLabel:       "Keep going",
				action:         entities.NotificationAction{Tab: nudgeTab(a.Category)},
				expiresInHours: 12,
			}))
		}
	}

	// 3. Level up.
	xp := progress.XP(slots, stats)
	level := progress.LevelFor(xp)
	prevLevel := prev.PreviousLevel
	if prevLevel == 0 {
		prevLevel = 1
	}
	if level.Level > prevLevel {
		out = append(out, e.make(now, entities.NotificationCelebration, params{
			sourceKey: fmt.Sprintf("level-up-%d", level.Level),
			icon:      level.Icon,
			title:     fmt.Sprintf("Level up! You're a %s!", level.Name),
			body:      fmt.Sprintf("You reached Level %d with %d XP. Keep growing!", level.Level, xp),
			ctaLabel:  "View progress",
			action:    entities.NotificationAction{Tab: entities.TabHome, OpenRewards: true},
		}))
	}

	// 4. Streak at risk, evenings only, one per day.
	if stats.Streak > 0 && hour >= 18 {
		out = append(out, e.make(now, entities.NotificationReminder, params{
			sourceKey:      "streak-risk-" + today,
			icon:           "🔥",
			title:          fmt.Sprintf("Don't lose your %d-day streak!", stats.Streak),
			body:           "Log a quick activity to keep it alive. Water, scan, or check your lab.",
			ctaLabel:       "Log activity",
			action:         entities.NotificationAction{Tab: entities.TabHome},
			expiresInHours: 8,
		}))
	}

	// 5. Weekly goal, strictly under 7, one per ISO week.
	if stats.WeeklyActivities < 7 {
		out = append(out, e.make(now, entities.NotificationSocial, params{
			sourceKey:      "weekly-goal-" + WeekKey(now),
			icon:           "🎯",
			title:          fmt.Sprintf("Weekly goal: %d to go!", 7-stats.WeeklyActivities),
			body:           fmt.Sprintf("You've done %d/7 activities this week. Almost there!", stats.WeeklyActivities),
			ctaLabel:       "View goal",
			action:         entities.NotificationAction{Tab: entities.TabHome, OpenRewards: true},
			expiresInHours: 24,
		}))
	}

	// 6. Lab freshness: last pH entry two or more days old, or none ever.
	var lastLab *string
	if len(lab.PH) > 0 {
		lastLab = &lab.PH[len(lab.PH)-1].Date
	}
	if since, ok := daysSinceDay(lastLab, now); !ok || since >= 2 {
		ago := "never"
		if ok {
			ago = fmt.Sprintf("%d days ago", since)
		}
		out = append(out, e.make(now, entities.NotificationReminder, params{
			sourceKey:      "lab-overdue-" + today,
			icon:           "🧪",
			title:          "Time for a lab check",
			body:           fmt.Sprintf("Your last water reading was %s. Keep your data fresh!", ago),
			ctaLabel:       "Log reading",
			action:         entities.NotificationAction{Tab: entities.TabLab},
			expiresInHours: 24,
		}))
	}

	// 7. Social proof, once per day. Count and template are random; the
	// sourceKey is not.
	tpl := socialTemplates[e.rnd.Intn(len(socialTemplates))]
	out = append(out, e.make(now, entities.NotificationSocial, params{
		sourceKey:      "social-" + today,
		icon:           "🌍",
		title:          tpl.title,
		body:           fmt.Sprintf(tpl.body, e.rnd.Intn(23)+8),
		ctaLabel:       "Tend your garden",
		action:         entities.NotificationAction{Tab: entities.TabHome},
		expiresInHours: 16,
	}))

	// 8. Time-of-day tip, once per day segment.
	bucket := TimeBucket(hour)
	var pool []tip
	switch bucket {
	case "morning":
		pool = morningTips
	case "afternoon":
		pool = afternoonTips
	default:
		pool = eveningTips
	}
	tp := pool[e.rnd.Intn(len(pool))]
	out = append(out, e.make(now, entities.NotificationTip, params{
		sourceKey:      "tip-" + today + "-" + bucket,
		icon:           tp.icon,
		title:          "Growing tip",
		body:           tp.body,
		ctaLabel:       "Learn more",
		action:         tp.action,
		expiresInHours: 8,
	}))

	// Rank and cap. The cap applies to the final sorted list, so older
	// low-priority candidates lose to newer high-priority ones.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > MaxNotifications {
		out = out[:MaxNotifications]
	}
	return out
}

func ptr(i int) *int { return &i }
