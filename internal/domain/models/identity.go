package models

// Identity — пользователь, разрешённый через Discord OAuth.
// Поля фиксируются в работе на момент отправки и задним числом не меняются.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

func (i Identity) IsZero() bool {
	return i.ID == ""
}
