package rest

type CredentialsIn struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateTaskIn struct {
	Text      string  `json:"text"`
	Important bool    `json:"important"`
	Urgent    bool    `json:"urgent"`
	Deadline  *string `json:"deadline,omitempty"`
}
