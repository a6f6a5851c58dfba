package models

import "portfolio/internal/storage"

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionUser is the identity echoed back by login and /api/auth/me.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AboutRequest is the body of PUT /api/admin/about. Skills and tools that are
// missing or not arrays come through as nil and are stored as empty lists.
type AboutRequest struct {
	Bio       string   `json:"bio"`
	Education string   `json:"education"`
	Languages string   `json:"languages"`
	Skills    []string `json:"skills"`
	Tools     []string `json:"tools"`
}

func (r AboutRequest) Params() storage.AboutParams {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	tools := r.Tools
	if tools == nil {
		tools = []string{}
	}
	return storage.AboutParams{
		Bio:       r.Bio,
		Education: r.Education,
		Languages: r.Languages,
		Skills:    skills,
		Tools:     tools,
	}
}

type CertificationRequest struct {
	Company       *string  `json:"company"`
	Title         *string  `json:"title"`
	Issued        *string  `json:"issued"`
	Platform      *string  `json:"platform"`
	Icon          *string  `json:"icon"`
	CardColor     *string  `json:"cardColor"`
	ButtonColor   *string  `json:"buttonColor"`
	TitleColor    *string  `json:"titleColor"`
	TextColor     *string  `json:"textColor"`
	CertImageURL  *string  `json:"certImageUrl"`
	CredentialURL *string  `json:"credentialUrl"`
	DisplayOrder  *FlexInt `json:"displayOrder"`
}

func (r CertificationRequest) Params() storage.CertificationParams {
	return storage.CertificationParams{
		Company:       r.Company,
		Title:         r.Title,
		Issued:        r.Issued,
		Platform:      r.Platform,
		Icon:          r.Icon,
		CardColor:     r.CardColor,
		ButtonColor:   r.ButtonColor,
		TitleColor:    r.TitleColor,
		TextColor:     r.TextColor,
		CertImageURL:  r.CertImageURL,
		CredentialURL: r.CredentialURL,
		DisplayOrder:  r.DisplayOrder.IntPtr(),
	}
}

type HackathonRequest struct {
	Name           *string  `json:"name"`
	Role           *string  `json:"role"`
	Organizer      *string  `json:"organizer"`
	Side           *string  `json:"side"`
	Delay          *FlexInt `json:"delay"`
	CertificateURL *string  `json:"certificateUrl"`
	DisplayOrder   *FlexInt `json:"displayOrder"`
}

func (r HackathonRequest) Params() storage.HackathonParams {
	return storage.HackathonParams{
		Name:           r.Name,
		Role:           r.Role,
		Organizer:      r.Organizer,
		Side:           r.Side,
		Delay:          r.Delay.IntPtr(),
		CertificateURL: r.CertificateURL,
		DisplayOrder:   r.DisplayOrder.IntPtr(),
	}
}

type ProjectRequest struct {
	Title        *string              `json:"title"`
	Description  *string              `json:"description"`
	ImageURL     *string              `json:"imageUrl"`
	Alt          *string              `json:"alt"`
	Technologies []storage.Technology `json:"technologies"`
	LiveURL      *string              `json:"liveUrl"`
	GithubURL    *string              `json:"githubUrl"`
	PrimaryColor *string              `json:"primaryColor"`
	DisplayOrder *FlexInt             `json:"displayOrder"`
}

func (r ProjectRequest) Params() storage.ProjectParams {
	return storage.ProjectParams{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Alt:          r.Alt,
		Technologies: r.Technologies,
		LiveURL:      r.LiveURL,
		GithubURL:    r.GithubURL,
		PrimaryColor: r.PrimaryColor,
		DisplayOrder: r.DisplayOrder.IntPtr(),
	}
}
