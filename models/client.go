package models

// Client is one row of the client registry. The legacy table keeps its
// historical name and primary-key column (t_client / codcli); the JSON
// surface exposes the key as "id".
type Client struct {
	ID      uint   `gorm:"column:codcli;primaryKey;autoIncrement" json:"id"`
	Nom     string `gorm:"size:40;index" json:"nom"`
	Prenom  string `gorm:"size:30" json:"prenom"`
	Adresse string `gorm:"size:50" json:"adresse"`

	// Nullable columns stay pointers so an unset value is NULL in the
	// table and null in JSON, not an empty string.
	Genre             *string `gorm:"size:8" json:"genre"`
	ComplementAdresse *string `gorm:"size:50" json:"complement_adresse"`
	Tel               *string `gorm:"size:10" json:"tel"`
	Email             *string `gorm:"size:255" json:"email"`

	Newsletter int `gorm:"default:0" json:"newsletter"`
}

func (Client) TableName() string {
	return "t_client"
}

// ClientCreate is the creation payload. nom, prenom and adresse are
// mandatory; everything else may be omitted.
type ClientCreate struct {
	Nom               string  `json:"nom" binding:"required,max=40"`
	Prenom            string  `json:"prenom" binding:"required,max=30"`
	Adresse           string  `json:"adresse" binding:"required,max=50"`
	Genre             *string `json:"genre" binding:"omitempty,max=8"`
	ComplementAdresse *string `json:"complement_adresse" binding:"omitempty,max=50"`
	Tel               *string `json:"tel" binding:"omitempty,max=10"`
	Email             *string `json:"email" binding:"omitempty,max=255"`
	Newsletter        *int    `json:"newsletter"`
}

// NewClient maps a validated creation payload onto a fresh row.
func NewClient(in ClientCreate) Client {
	c := Client{
		Nom:               in.Nom,
		Prenom:            in.Prenom,
		Adresse:           in.Adresse,
		Genre:             in.Genre,
		ComplementAdresse: in.ComplementAdresse,
		Tel:               in.Tel,
		Email:             in.Email,
	}
	if in.Newsletter != nil {
		c.Newsletter = *in.Newsletter
	}
	return c
}
