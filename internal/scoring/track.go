package scoring

// trackTable is the functionality track policy, ascending and non-overlapping.
// Text fields are reproduced exactly as published.
var trackTable = [...]Track{
	{Tier: BandLow, TierLabel: "Baixo", SubTier: "1A", ScoreRange: "6 a 9", Min: 6, Max: 9,
		Name: "80+ Integridade Funcional", ReviewCadence: "Não domiciliar / Gerenciamento",
		Guidance: "Prevenção", DisplayColor: "trilha-dark-green"},
	{Tier: BandLow, TierLabel: "Baixo", SubTier: "1B", ScoreRange: "10 a 13", Min: 10, Max: 13,
		Name: "80+ Vitalidade", ReviewCadence: "Até 3 meses",
		Guidance: "Intervenção Funcional Breve", DisplayColor: "trilha-light-green"},
	{Tier: BandModerate, TierLabel: "Moderado", SubTier: "2A", ScoreRange: "14 a 17", Min: 14, Max: 17,
		Name: "80+ Transição Funcional", ReviewCadence: "Até 6 meses",
		Guidance: "Reabilitação Funcional moderada", DisplayColor: "trilha-yellow"},
	{Tier: BandModerate, TierLabel: "Moderado", SubTier: "2B", ScoreRange: "18 a 22", Min: 18, Max: 22,
		Name: "80+ Reabilitação Ativa", ReviewCadence: "Até 6 meses",
		Guidance: "Manutenção funcional", DisplayColor: "trilha-light-yellow"},
	{Tier: BandHigh, TierLabel: "Alto", SubTier: "3A", ScoreRange: "23 a 27", Min: 23, Max: 27,
		Name: "80+ Reabilitação Assistida", ReviewCadence: "Revisão 6 meses",
		Guidance: "Minimizar declínio funcional", DisplayColor: "trilha-orange"},
	{Tier: BandHigh, TierLabel: "Alto", SubTier: "3B", ScoreRange: "28 a 31", Min: 28, Max: 31,
		Name: "80+ Estabilização Funcional Avançada", ReviewCadence: "Revisão 6 meses",
		Guidance: "Gerenciamento funcional e Controle clínico", DisplayColor: "trilha-light-orange"},
	{Tier: BandExtreme, TierLabel: "Extremo", SubTier: "4A", ScoreRange: "32 a 36", Min: 32, Max: 36,
		Name: "80+ Intervenção Funcional Contínua de alta complexidade com revisão periódica", ReviewCadence: "Ajuste de frequência",
		Guidance: "Intervenção intensiva", DisplayColor: "trilha-light-red"},
	{Tier: BandExtreme, TierLabel: "Extremo", SubTier: "4B", ScoreRange: "37 a 39", Min: 37, Max: 39,
		Name: "80+ Complexidade Avançada", ReviewCadence: "Superior a 3 semanas",
		Guidance: "Suporte contínuo", DisplayColor: "trilha-red"},
}

// Track table bounds, inclusive
const (
	TrackFloor   = 6
	TrackCeiling = 39
)

// ResolveTrack returns the functionality track for a total score.
// Totals below TrackFloor or above TrackCeiling have no track.
func ResolveTrack(total int) (Track, bool) {
	for _, t := range trackTable {
		if total >= t.Min && total <= t.Max {
			return t, true
		}
	}
	return Track{}, false
}

// Tracks returns a copy of the track table in ascending order
func Tracks() []Track {
	out := make([]Track, len(trackTable))
	copy(out, trackTable[:])
	return out
}
