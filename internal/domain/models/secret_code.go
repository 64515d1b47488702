package models

// SecretCode — скрытая кнопка на странице с наградой за находку
type SecretCode struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Reward string `json:"reward"`
}

// Коды и награды совпадают с кнопками, разбросанными по секциям сайта
var SecretCodes = []SecretCode{
	{ID: "lunarjuan", Name: "Lunar Juan", Reward: "500 monedas lunares"},
	{ID: "halarmoon", Name: "Halar Moon", Reward: "Kit de inicio VIP"},
	{ID: "craft2026", Name: "Craft 2026", Reward: "Partículas especiales"},
	{ID: "secretluna", Name: "Secret Luna", Reward: "Mascota lunar"},
	{ID: "velocityvip", Name: "Velocity VIP", Reward: "3 días de VIP"},
}

// SecretCodeByID находит код по идентификатору
func SecretCodeByID(id string) (SecretCode, bool) {
	for _, c := range SecretCodes {
		if c.ID == id {
			return c, true
		}
	}
	return SecretCode{}, false
}
