package web

// Route is one entry of the navigation shell.
type Route struct {
	Path     string
	Label    string
	Template string
}

// Paths of the five pages.
const (
	PathDashboard      = "/"
	PathClients        = "/clients"
	PathClientDetails  = "/client-details"
	PathAccounts       = "/accounts"
	PathAccountDetails = "/account-details"
)

// Routes is the static route table, in navbar order.
var Routes = []Route{
	{Path: PathDashboard, Label: "nav.dashboard", Template: "dashboard"},
	{Path: PathClients, Label: "nav.clients", Template: "clients"},
	{Path: PathClientDetails, Label: "nav.client_details", Template: "client_details"},
	{Path: PathAccounts, Label: "nav.accounts", Template: "accounts"},
	{Path: PathAccountDetails, Label: "nav.account_details", Template: "account_details"},
}

func routeFor(path string) Route {
	for _, r := range Routes {
		if r.Path == path {
			return r
		}
	}
	return Routes[0]
}
