package welfare

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	keyMorningFeed = "morning_feed"
	keyWalk        = "walk"
	keyEveningFeed = "evening_feed"
	keyMood        = "mood"
	keyBedtime     = "bedtime"
)

// Checklist de tareas del día. nil = no informado; solo false explícito cuenta
// como "no hecho". Claves desconocidas van a Extra.
type Checklist struct {
	MorningFeed *bool
	Walk        *bool
	EveningFeed *bool
	Mood        *bool
	Bedtime     *bool

	Extra map[string]bool
}

// MissedBothFeeds: las dos comidas informadas explícitamente como no hechas.
func (c Checklist) MissedBothFeeds() bool {
	return c.MorningFeed != nil && !*c.MorningFeed &&
		c.EveningFeed != nil && !*c.EveningFeed
}

func (c *Checklist) named() map[string]**bool {
	return map[string]**bool{
		keyMorningFeed: &c.MorningFeed,
		keyWalk:        &c.Walk,
		keyEveningFeed: &c.EveningFeed,
		keyMood:        &c.Mood,
		keyBedtime:     &c.Bedtime,
	}
}

// MarshalJSON emite un objeto plano {"morning_feed":true,...}.
func (c Checklist) MarshalJSON() ([]byte, error) {
	out := make(map[string]bool, 5+len(c.Extra))
	for k, v := range c.Extra {
		out[k] = v
	}
	for k, p := range c.named() {
		if *p != nil {
			out[k] = **p
		}
	}
	return json.Marshal(out)
}

func (c *Checklist) UnmarshalJSON(data []byte) error {
	*c = Checklist{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var raw map[string]*bool
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("checklist must be an object of booleans: %w", err)
	}

	named := c.named()
	for k, v := range raw {
		if v == nil {
			continue
		}
		if p, ok := named[k]; ok {
			b := *v
			*p = &b
			continue
		}
		if c.Extra == nil {
			c.Extra = map[string]bool{}
		}
		c.Extra[k] = *v
	}
	return nil
}
