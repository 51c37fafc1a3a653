package get_availability

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/BeautyBookingService/internal/domain"
)

// MatchKind способ, которым идентификатор сопоставлен с услугой каталога
type MatchKind int

const (
	MatchNotFound MatchKind = iota
	MatchExactID
	MatchExactName
	MatchFuzzy
)

func (k MatchKind) String() string {
	switch k {
	case MatchExactID:
		return "exact_id"
	case MatchExactName:
		return "exact_name"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "not_found"
	}
}

// ServiceMatch результат сопоставления одного идентификатора
type ServiceMatch struct {
	Kind     MatchKind
	Service  *domain.Service // nil для MatchNotFound
	Searched string          // Нормализованное значение, по которому искали
}

// SplitServiceIdentifiers разбивает строку "1, Maquillaje social (S/ 1,500)" на идентификаторы.
// Запятые внутри скобок (цена) не считаются разделителями.
func SplitServiceIdentifiers(s string) []string {
	result := make([]string, 0)
	depth := 0
	start := 0

	flush := func(end int) {
		if part := strings.TrimSpace(s[start:end]); part != "" {
			result = append(result, part)
		}
	}

	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(s))

	return result
}

// stripDisplaySuffix убирает цену из строки вида "Название (S/ 150)"
func stripDisplaySuffix(identifier string) string {
	identifier = strings.TrimSpace(identifier)
	if idx := strings.LastIndex(identifier, " ("); idx > 0 && strings.HasSuffix(identifier, ")") {
		return strings.TrimSpace(identifier[:idx])
	}
	return identifier
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// matchService сопоставляет идентификатор с каталогом.
// Порядок стратегий: точный ID -> точное название -> подстрока в любую сторону.
func matchService(identifier string, catalog []*domain.Service) ServiceMatch {
	raw := strings.TrimSpace(identifier)

	// 1. Точное совпадение по ID
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		for _, s := range catalog {
			if s.ID == id {
				return ServiceMatch{Kind: MatchExactID, Service: s, Searched: raw}
			}
		}
	}

	searched := normalizeName(stripDisplaySuffix(raw))
	if searched == "" {
		return ServiceMatch{Kind: MatchNotFound, Searched: raw}
	}

	// 2. Точное совпадение по названию
	for _, s := range catalog {
		if normalizeName(s.Name) == searched {
			return ServiceMatch{Kind: MatchExactName, Service: s, Searched: searched}
		}
	}

	// 3. Подстрока в любую сторону, при нескольких совпадениях - самое длинное название
	var best *domain.Service
	for _, s := range catalog {
		name := normalizeName(s.Name)
		if name == "" {
			continue
		}
		if fuzzyContains(name, searched) || fuzzyContains(searched, name) {
			if best == nil || len(s.Name) > len(best.Name) {
				best = s
			}
		}
	}
	if best != nil {
		return ServiceMatch{Kind: MatchFuzzy, Service: best, Searched: searched}
	}

	return ServiceMatch{Kind: MatchNotFound, Searched: searched}
}

// fuzzyContains проверяет вхождение part в s; слишком короткие фрагменты не учитываются
func fuzzyContains(s, part string) bool {
	return utf8.RuneCountInString(part) >= domain.MinFuzzyMatchLength && strings.Contains(s, part)
}

// resolveServices сопоставляет все идентификаторы и возвращает услуги и суммарную длительность.
// Если суммарная длительность не положительна, используется длительность по умолчанию.
func resolveServices(identifiers []string, catalog []*domain.Service) ([]*domain.Service, int, []ServiceMatch, error) {
	services := make([]*domain.Service, 0, len(identifiers))
	matches := make([]ServiceMatch, 0, len(identifiers))
	total := 0

	for _, identifier := range identifiers {
		match := matchService(identifier, catalog)
		if match.Kind == MatchNotFound {
			return nil, 0, nil, &UnknownServiceError{
				Searched:  match.Searched,
				Original:  identifier,
				Available: serviceNames(catalog),
			}
		}
		matches = append(matches, match)
		services = append(services, match.Service)
		total += match.Service.DurationMinutes
	}

	if total <= 0 {
		total = domain.DefaultServiceDurationMinutes
	}

	return services, total, matches, nil
}

func serviceNames(catalog []*domain.Service) []string {
	names := make([]string, len(catalog))
	for i, s := range catalog {
		names[i] = s.Name
	}
	return names
}
