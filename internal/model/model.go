package model

import "strings"

// Person is an individual contact. Name is the identity field: two people
// with the same name are the same contact as far as the book is concerned
// (see SamePerson), everything else is payload.
type Person struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Phone   string   `json:"phone,omitempty"`
	Email   string   `json:"email,omitempty"`
	Address string   `json:"address,omitempty"`
	Note    string   `json:"note,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// Company is an organization contact with its own ordered roster of people.
type Company struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Industry    string   `json:"industry,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Website     string   `json:"website,omitempty"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Address     string   `json:"address,omitempty"`
	People      []Person `json:"people,omitempty"`
}

// SamePerson reports whether two people share domain identity.
func (p Person) SamePerson(other Person) bool {
	return p.Name == other.Name
}

// SameCompany reports whether two companies share domain identity.
func (c Company) SameCompany(other Company) bool {
	return c.Name == other.Name
}

// Clone returns a copy with its own tag slice.
func (p Person) Clone() Person {
	out := p
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	return out
}

// Clone returns a copy with its own roster slice.
func (c Company) Clone() Company {
	out := c
	if c.People != nil {
		out.People = make([]Person, 0, len(c.People))
		for _, p := range c.People {
			out.People = append(out.People, p.Clone())
		}
	}
	return out
}

// Equal compares every field, not just identity.
func (p Person) Equal(other Person) bool {
	if p.ID != other.ID || p.Name != other.Name || p.Phone != other.Phone ||
		p.Email != other.Email || p.Address != other.Address || p.Note != other.Note {
		return false
	}
	if len(p.Tags) != len(other.Tags) {
		return false
	}
	for i := range p.Tags {
		if p.Tags[i] != other.Tags[i] {
			return false
		}
	}
	return true
}

// Equal compares every field, including the roster in order.
func (c Company) Equal(other Company) bool {
	if c.ID != other.ID || c.Name != other.Name || c.Industry != other.Industry ||
		c.Location != other.Location || c.Description != other.Description ||
		c.Website != other.Website || c.Email != other.Email ||
		c.Phone != other.Phone || c.Address != other.Address {
		return false
	}
	if len(c.People) != len(other.People) {
		return false
	}
	for i := range c.People {
		if !c.People[i].Equal(other.People[i]) {
			return false
		}
	}
	return true
}

// MatchesQuery reports whether the person matches a free-text query
// (case-insensitive substring over name, email, phone and tags).
func (p Person) MatchesQuery(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Email), q) ||
		strings.Contains(strings.ToLower(p.Phone), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// MatchesQuery reports whether the company matches a free-text query
// (case-insensitive substring over name, industry and location).
func (c Company) MatchesQuery(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Industry), q) ||
		strings.Contains(strings.ToLower(c.Location), q)
}
