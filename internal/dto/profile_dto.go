package dto

type ProfileResponse struct {
	Name       string   `json:"name"`
	Gender     string   `json:"gender"`
	Pronouns   string   `json:"pronouns"`
	Birthday   *string  `json:"birthday"`
	Bio        string   `json:"bio"`
	Occupation string   `json:"occupation"`
	Location   string   `json:"location"`
	Timezone   string   `json:"timezone"`
	Interests  []string `json:"interests"`
}

type UpdateProfileRequest struct {
	Name       *string   `json:"name"`
	Gender     *string   `json:"gender"`
	Pronouns   *string   `json:"pronouns"`
	Birthday   *string   `json:"birthday"`
	Bio        *string   `json:"bio"`
	Occupation *string   `json:"occupation"`
	Location   *string   `json:"location"`
	Timezone   *string   `json:"timezone"`
	Interests  *[]string `json:"interests"`
}
