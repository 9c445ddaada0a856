package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	apperrors "mihrab/internal/platform/errors"
)

const SurahCount = 114

type Language struct {
	ID     int
	Name   string
	Native string
	ISO    string
}

type Moshaf struct {
	ID          int
	Name        string
	Server      string
	SurahList   string
	SurahTotal  int
	AudioFormat string
}

type Reciter struct {
	ID     int
	Name   string
	Letter string
	Moshaf []Moshaf
}

type Surah struct {
	ID         int
	NameArabic string
	NameSimple string
}

func (s Surah) DisplayName(appLanguage string) string {
	if appLanguage == "ar" && s.NameArabic != "" {
		return s.NameArabic
	}
	return s.NameSimple
}

func ValidateSurah(id int) error {
	if id < 1 || id > SurahCount {
		return fmt.Errorf("%w: surah %d out of range 1-%d", apperrors.ErrInvalidInput, id, SurahCount)
	}
	return nil
}

// AudioURL is the moshaf server followed by the zero padded surah number.
func AudioURL(m Moshaf, surahID int) (string, error) {
	if err := ValidateSurah(surahID); err != nil {
		return "", err
	}
	if strings.TrimSpace(m.Server) == "" {
		return "", fmt.Errorf("%w: moshaf %d has no server", apperrors.ErrInvalidInput, m.ID)
	}
	format := strings.TrimSpace(m.AudioFormat)
	if format == "" {
		format = "mp3"
	}
	return fmt.Sprintf("%s%03d.%s", m.Server, surahID, format), nil
}

// SurahIDs parses the comma separated surah list, sorted and without
// duplicates. An empty list yields nil.
func (m Moshaf) SurahIDs() []int {
	if strings.TrimSpace(m.SurahList) == "" {
		return nil
	}
	seen := make(map[int]struct{})
	var ids []int
	for _, part := range strings.Split(m.SurahList, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || ValidateSurah(id) != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// HasSurah reports availability. A moshaf without a surah list is treated
// as complete.
func (m Moshaf) HasSurah(id int) bool {
	if ValidateSurah(id) != nil {
		return false
	}
	ids := m.SurahIDs()
	if ids == nil {
		return true
	}
	i := sort.SearchInts(ids, id)
	return i < len(ids) && ids[i] == id
}

// NextSurah is the first surah after current that the moshaf carries.
func NextSurah(m Moshaf, current int) (int, bool) {
	ids := m.SurahIDs()
	if ids == nil {
		if current >= 1 && current < SurahCount {
			return current + 1, true
		}
		return 0, false
	}
	i := sort.SearchInts(ids, current+1)
	if i < len(ids) {
		return ids[i], true
	}
	return 0, false
}

// FilterReciters keeps reciters whose name contains query, ignoring case.
func FilterReciters(reciters []Reciter, query string) []Reciter {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return reciters
	}
	out := make([]Reciter, 0, len(reciters))
	for _, r := range reciters {
		if strings.Contains(strings.ToLower(r.Name), query) {
			out = append(out, r)
		}
	}
	return out
}

// DefaultLanguage picks Arabic for an Arabic interface and English otherwise,
// falling back to the first catalog language.
func DefaultLanguage(languages []Language, appLanguage string) (Language, bool) {
	want := "en"
	if appLanguage == "ar" {
		want = "ar"
	}
	for _, l := range languages {
		if strings.EqualFold(l.ISO, want) {
			return l, true
		}
	}
	if len(languages) > 0 {
		return languages[0], true
	}
	return Language{}, false
}

func FindReciter(reciters []Reciter, id int) (Reciter, bool) {
	for _, r := range reciters {
		if r.ID == id {
			return r, true
		}
	}
	return Reciter{}, false
}

// FindMoshaf returns the requested moshaf, or the reciter's first one when id is 0.
func (r Reciter) FindMoshaf(id int) (Moshaf, bool) {
	if id == 0 {
		if len(r.Moshaf) == 0 {
			return Moshaf{}, false
		}
		return r.Moshaf[0], true
	}
	for _, m := range r.Moshaf {
		if m.ID == id {
			return m, true
		}
	}
	return Moshaf{}, false
}
