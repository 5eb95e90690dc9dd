package insights

import (
	"encoding/json"
	"strings"
)

// Every strategy must yield between minInsights and maxInsights entries;
// a single insight is as useless to the composer as none.
const (
	maxInsights         = 4
	minInsights         = 2
	minRecoveredLineLen = 20
)

// parseInsights runs an ordered chain of parser strategies over the raw
// model output: strict JSON array, fenced/embedded JSON array, then
// bulleted-line recovery. The first strategy that produces a usable list
// wins; when all fail the caller gets an ExtractionError.
func parseInsights(raw, team string) ([]string, error) {
	strategies := []func(raw, team string) ([]string, bool){
		parseStrictJSON,
		parseFencedJSON,
		recoverLines,
	}
	for _, strategy := range strategies {
		if insights, ok := strategy(raw, team); ok {
			return insights, nil
		}
	}
	return nil, extractionErr("response did not contain usable insights", nil)
}

func parseStrictJSON(raw, _ string) ([]string, bool) {
	return decodeStringArray(strings.TrimSpace(raw))
}

// parseFencedJSON handles models that wrap the array in markdown code
// fences or surround it with prose.
func parseFencedJSON(raw, _ string) ([]string, bool) {
	cleaned := stripCodeFences(raw)
	if insights, ok := decodeStringArray(cleaned); ok {
		return insights, true
	}

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start < 0 || end <= start {
		return nil, false
	}
	return decodeStringArray(cleaned[start : end+1])
}

// recoverLines salvages insights from free text that ignored the JSON
// instruction: bullet-marked or team-mentioning lines above a minimum
// length, markers stripped.
func recoverLines(raw, team string) ([]string, bool) {
	teamLower := strings.ToLower(team)
	var recovered []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if len([]rune(line)) <= minRecoveredLineLen {
			continue
		}
		marked := strings.ContainsAny(line, "-•*")
		mentionsTeam := teamLower != "" && strings.Contains(strings.ToLower(line), teamLower)
		if !marked && !mentionsTeam {
			continue
		}

		recovered = append(recovered, stripListMarker(line))
		if len(recovered) == maxInsights {
			break
		}
	}

	if len(recovered) < minInsights {
		return nil, false
	}
	return recovered, true
}

func decodeStringArray(raw string) ([]string, bool) {
	var decoded []string
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, false
	}

	insights := make([]string, 0, maxInsights)
	for _, entry := range decoded {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		insights = append(insights, entry)
		if len(insights) == maxInsights {
			break
		}
	}
	if len(insights) < minInsights {
		return nil, false
	}
	return insights, true
}

func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

func stripListMarker(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "-•* \t"))
}
