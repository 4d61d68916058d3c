package models

// HazardTier is the closed four-value green-procurement classification
// assigned to a chemical substance. Tier1 is the lowest hazard, Tier4 the
// highest. Source data that carries a blank or unrecognised tier value maps
// to TierUnknown explicitly instead of silently defaulting to the zero tier.
type HazardTier int

const (
	// TierUnknown marks a record whose tier value is missing or unparseable.
	TierUnknown HazardTier = iota
	// Tier1 is a substance with essentially no hazard, safe to use.
	Tier1
	// Tier2 is a low-hazard substance, usable under specific conditions.
	Tier2
	// Tier3 is a medium-hazard substance, replacement is advised.
	Tier3
	// Tier4 is a high-hazard substance, replacement should be prioritised.
	Tier4
)

// tier labels as they appear in the dataset's 绿色分级 column.
var tierLabels = map[HazardTier]string{
	Tier1: "1级",
	Tier2: "2级",
	Tier3: "3级",
	Tier4: "4级",
}

var tierDescriptions = map[HazardTier]string{
	Tier1: "基本无危害物质，可安全使用",
	Tier2: "低度危害物质，可在特定条件下使用",
	Tier3: "中度危害物质，建议寻找替代方案",
	Tier4: "高度危害物质，应优先考虑替代",
}

// Display colors form a green-to-red ramp: the lower the tier, the greener
// the color.
var tierColors = map[HazardTier]string{
	Tier1: "#00FF00",
	Tier2: "#FFFF00",
	Tier3: "#FFA500",
	Tier4: "#FF0000",
}

// ParseHazardTier converts a raw tier string from the dataset ("1级".."4级")
// into a HazardTier. Any other value, including the empty string, yields
// TierUnknown.
func ParseHazardTier(raw string) HazardTier {
	switch raw {
	case "1级":
		return Tier1
	case "2级":
		return Tier2
	case "3级":
		return Tier3
	case "4级":
		return Tier4
	default:
		return TierUnknown
	}
}

// String returns the dataset label of the tier ("1级".."4级"), or "未知" for
// TierUnknown. It implements the [fmt.Stringer] interface.
func (t HazardTier) String() string {
	if label, ok := tierLabels[t]; ok {
		return label
	}
	return "未知"
}

// Description returns the human-readable hazard statement for the tier.
func (t HazardTier) Description() string {
	if desc, ok := tierDescriptions[t]; ok {
		return desc
	}
	return "未知危害级别"
}

// Color returns the display color of the tier as a hex RGB string.
// TierUnknown maps to a neutral grey.
func (t HazardTier) Color() string {
	if color, ok := tierColors[t]; ok {
		return color
	}
	return "#CCCCCC"
}

// GaugeValue returns the ordinal position of the tier on the 0..4 gauge used
// by the result view. TierUnknown yields 0, which renders as an empty gauge.
func (t HazardTier) GaugeValue() int {
	switch t {
	case Tier1, Tier2, Tier3, Tier4:
		return int(t)
	default:
		return 0
	}
}
