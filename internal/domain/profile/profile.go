// Package profile projects raw researcher records into display-ready shapes.
// Every embedded JSON blob is parsed behind its own guard: a malformed
// publications or modules value empties that one collection and the rest of
// the profile still comes back complete.
package profile

import (
	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
	"github.com/heavenike02/sdg-showcase-3/internal/domain/target"
)

// Publication is one formatted publication entry.
type Publication struct {
	Name   string `json:"name"`
	Author string `json:"author"`
	Link   string `json:"link"`
	SDG    string `json:"sdg"`
}

// Teaching is one taught course with its SDG alignment.
type Teaching struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SDGs        []int  `json:"sdgs"`
}

// Project is one research project.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        string `json:"year"`
	Funding     string `json:"funding"`
}

// SDGAlignment maps a module to one goal.
type SDGAlignment struct {
	SDG       string `json:"sdg"`
	Alignment string `json:"alignment"`
}

// Module is one entry of the flat module-list shape.
type Module struct {
	ModuleCode        string         `json:"moduleCode"`
	ModuleName        string         `json:"moduleName"`
	ModuleDescription string         `json:"moduleDescription"`
	SDGAlignments     []SDGAlignment `json:"sdgAlignments"`
}

// Profile is the display-ready projection of one researcher. Created per
// page view and discarded; never persisted.
type Profile struct {
	ID                   string               `json:"id"`
	Name                 string               `json:"name"`
	Title                string               `json:"title"`
	Department           string               `json:"department"`
	Institution          string               `json:"institution"`
	Email                string               `json:"email"`
	Bio                  string               `json:"bio"`
	Interests            []string             `json:"interests"`
	PrimarySDG           int                  `json:"primarySDG"`
	SDGs                 []int                `json:"sdgs"`
	Targets              []target.Target      `json:"targets"`
	TargetImpacts        []model.TargetImpact `json:"targetImpacts"`
	Insights             string               `json:"insights"`
	RecommendedTags      []string             `json:"recommendedTags"`
	Tags                 []string             `json:"tags"`
	Publications         []Publication        `json:"publications"`
	PublicationsOverview string               `json:"publicationsOverview"`
	Teaching             []Teaching           `json:"teaching"`
	Projects             []Project            `json:"projects"`
	Modules              []Module             `json:"modules"`
	ProfilePicture       string               `json:"profilePicture"`
	Image                string               `json:"image"`
}

// Card is the compact projection used in search result lists.
type Card struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Department  string   `json:"department"`
	Institution string   `json:"institution"`
	Interests   []string `json:"interests"`
	PrimarySDG  int      `json:"primarySDG"`
	SDGs        []int    `json:"sdgs"`
	Image       string   `json:"image"`
}
