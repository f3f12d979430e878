package order

import (
	"fmt"
	"strconv"
	"strings"
)

// Quartile and quantile schemes are addressable by name as well as by
// number. Names are matched case-insensitively and numeric strings map to
// the scheme with that code.

var quartileAliases = map[string]QuartileScheme{
	"inclusive": QuartileInclusive,
	"incl":      QuartileInclusive,
	"tukey":     QuartileInclusive,
	"hinges":    QuartileInclusive,
	"exclusive": QuartileExclusive,
	"excl":      QuartileExclusive,
	"m&m":       QuartileExclusive,
	"ti-85":     QuartileExclusive,
	"m&s":       QuartileMendenhall,
	"ms":        QuartileMendenhall,
	"minitab":   QuartileMinitab,
	"excel":     QuartileExcel,
	"fp":        QuartileExcel,
	"cdf":       QuartileCDF,
	"langford":  QuartileCDF,
}

var quantileAliases = map[string]QuantileScheme{
	"sas-1": QuantileR4,
	"sas-2": QuantileR3,
	"sas-3": QuantileR1,
	"sas-4": QuantileR6,
	"sas-5": QuantileR2,
	"excel": QuantileR7,
	"lqd":   QuantileLQD,
}

// ParseQuartileScheme resolves a quartile scheme name or numeric code.
func ParseQuartileScheme(name string) (QuartileScheme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if s, ok := quartileAliases[key]; ok {
		return s, nil
	}
	if code, err := strconv.Atoi(key); err == nil {
		if code >= int(QuartileInclusive) && code <= int(QuartileCDF) {
			return QuartileScheme(code), nil
		}
	}
	return 0, fmt.Errorf("no quartile scheme named %q: %w", name, ErrUnknownScheme)
}

// ParseQuantileScheme resolves a quantile scheme name or numeric code.
// The R types are also addressable as "r-1" through "r-10".
func ParseQuantileScheme(name string) (QuantileScheme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if s, ok := quantileAliases[key]; ok {
		return s, nil
	}
	if rest, ok := strings.CutPrefix(key, "r-"); ok {
		key = rest
	}
	if code, err := strconv.Atoi(key); err == nil {
		if code >= int(QuantileR1) && code <= int(QuantileLQD) {
			return QuantileScheme(code), nil
		}
	}
	return 0, fmt.Errorf("no quantile scheme named %q: %w", name, ErrUnknownScheme)
}
