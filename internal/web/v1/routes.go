package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is one entry of the API route table
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	// Auth puts the route behind the bearer token gate.
	Auth bool
}

// Handlers groups the handlers the route table dispatches to
type Handlers struct {
	Users   *UserHandler
	Admins  *AdminHandler
	Hostels *HostelHandler
	Auth    *AuthHandler
}

// Routes returns the complete API route table, relative to /api/v1
func Routes(h Handlers) []Route {
	return []Route{
		{http.MethodGet, "/users", h.Users.ListUsers, false},
		{http.MethodPost, "/users", h.Users.CreateUser, false},
		{http.MethodGet, "/users/:id", h.Users.GetUser, false},
		{http.MethodPut, "/users/:id", h.Users.ReplaceUser, false},
		{http.MethodPatch, "/users/:id", h.Users.PatchUser, false},
		{http.MethodDelete, "/users/:id", h.Users.DeleteUser, false},

		{http.MethodGet, "/user-profile/:id", h.Users.GetProfile, true},
		{http.MethodPut, "/user-profile/:id", h.Users.ReplaceProfile, true},
		{http.MethodPatch, "/user-profile/:id", h.Users.PatchProfile, true},

		{http.MethodGet, "/admins", h.Admins.ListAdmins, false},
		{http.MethodPost, "/admins", h.Admins.CreateAdmin, false},
		{http.MethodGet, "/admins/:id", h.Admins.GetAdmin, false},
		{http.MethodPut, "/admins/:id", h.Admins.ReplaceAdmin, false},
		{http.MethodPatch, "/admins/:id", h.Admins.PatchAdmin, false},
		{http.MethodDelete, "/admins/:id", h.Admins.DeleteAdmin, false},
		{http.MethodGet, "/admins/:id/hostels", h.Admins.ListAdminHostels, false},

		{http.MethodGet, "/hostels", h.Hostels.ListHostels, false},
		{http.MethodPost, "/hostels", h.Hostels.CreateHostel, false},
		{http.MethodGet, "/hostels/:id", h.Hostels.GetHostel, false},
		{http.MethodPut, "/hostels/:id", h.Hostels.ReplaceHostel, false},
		{http.MethodPatch, "/hostels/:id", h.Hostels.PatchHostel, false},
		{http.MethodDelete, "/hostels/:id", h.Hostels.DeleteHostel, false},

		{http.MethodPost, "/auth/login", h.Auth.Login, false},
		{http.MethodPost, "/auth/logout", h.Auth.Logout, true},
	}
}

// Mount registers routes on group once. auth runs ahead of every route marked
// Auth.
func Mount(group *gin.RouterGroup, routes []Route, auth gin.HandlerFunc) {
	for _, r := range routes {
		chain := make([]gin.HandlerFunc, 0, 2)
		if r.Auth {
			chain = append(chain, auth)
		}
		chain = append(chain, r.Handler)
		group.Handle(r.Method, r.Path, chain...)
	}
}
