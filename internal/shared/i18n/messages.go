package i18n

// Message keys used from Go code. Templates reference the label keys
// directly by string.
const (
	ErrLoadData         = "err.load_data"
	ErrLoadClients      = "err.load_clients"
	ErrLoadAccounts     = "err.load_accounts"
	ErrAddClient        = "err.add_client"
	ErrLookupClient     = "err.lookup_client"
	ErrCreateAccount    = "err.create_account"
	ErrLookupAccount    = "err.lookup_account"
	ErrInvalidID        = "err.invalid_id"
	ErrFormInvalid      = "err.form_invalid"
	ErrClientIDNotFound = "err.client_id_not_found"
	ErrClientHasType    = "err.client_has_type"
	ErrClientNotListed  = "err.client_not_listed"

	OkClientAdded    = "ok.client_added"
	OkClientFound    = "ok.client_found"
	OkAccountCreated = "ok.account_created"
	OkAccountFound   = "ok.account_found"
	OkAccountsShown  = "ok.accounts_shown"

	FormNameRequired    = "form.name_required"
	FormEmailRequired   = "form.email_required"
	FormEmailInvalid    = "form.email_invalid"
	FormBalanceNegative = "form.balance_negative"
	FormBalanceInvalid  = "form.balance_invalid"
	FormTypeRequired    = "form.type_required"
	FormClientRequired  = "form.client_required"
)

var catalogs = map[string]map[string]string{
	"en": {
		ErrLoadData:         "Error loading data",
		ErrLoadClients:      "Error loading clients",
		ErrLoadAccounts:     "Error loading accounts",
		ErrAddClient:        "Error adding client",
		ErrLookupClient:     "Client not found or lookup failed",
		ErrCreateAccount:    "Error creating account",
		ErrLookupAccount:    "Account not found or lookup failed",
		ErrInvalidID:        "Please enter a valid ID.",
		ErrFormInvalid:      "Please fill in all fields correctly.",
		ErrClientIDNotFound: "Client with id {0} not found.",
		ErrClientHasType:    "Client already has a {0} account.",
		ErrClientNotListed:  "Client {0} is not in the list.",

		OkClientAdded:    "Client added successfully!",
		OkClientFound:    "Client ID {0} found!",
		OkAccountCreated: "Account created successfully!",
		OkAccountFound:   "Account ID {0} found!",
		OkAccountsShown:  "Accounts of client ID {0} displayed!",

		FormNameRequired:    "Name is required.",
		FormEmailRequired:   "Email is required.",
		FormEmailInvalid:    "Please enter a valid email.",
		FormBalanceNegative: "Balance cannot be negative.",
		FormBalanceInvalid:  "Enter a valid amount.",
		FormTypeRequired:    "Select an account type.",
		FormClientRequired:  "Select a client.",

		"nav.brand":           "Bank Back Office",
		"nav.dashboard":       "Dashboard",
		"nav.clients":         "Clients",
		"nav.client_details":  "Client Details",
		"nav.accounts":        "Accounts",
		"nav.account_details": "Account Details",

		"common.loading": "Loading…",
		"common.close":   "Close",
		"common.back":    "Back to Management",
		"common.search":  "Search",

		"empty.accounts":        "No accounts found.",
		"empty.clients":         "No clients found.",
		"empty.client_accounts": "No accounts found for this client.",
		"empty.selection":       "No client selected.",

		"dashboard.title":           "Bank Dashboard",
		"dashboard.total":           "Total Clients",
		"dashboard.manage_clients":  "Manage Clients",
		"dashboard.manage_accounts": "Manage Accounts",

		"clients.title":    "Client Management",
		"clients.add":      "Add a Client",
		"clients.search":   "Find a Client by ID",
		"clients.view_all": "View all clients",
		"clients.found":    "Client found",

		"form.name":           "Name",
		"form.email":          "Email",
		"form.id":             "ID",
		"form.submit_client":  "Add Client",
		"form.balance":        "Initial Balance (€)",
		"form.type":           "Account Type",
		"form.client":         "Client",
		"form.submit_account": "Create Account",

		"client_details.title":       "Client Details",
		"client_details.list":        "Client List",
		"client_details.view":        "View Details & Accounts",
		"client_details.modal_title": "Details & Accounts of {0}",
		"client_details.accounts":    "Linked Accounts",

		"accounts.title":    "Bank Account Management",
		"accounts.create":   "Create a New Account",
		"accounts.search":   "Find an Account by ID",
		"accounts.view_all": "View all accounts",
		"accounts.found":    "Account found",

		"account_type.CURRENT": "Current Account",
		"account_type.SAVINGS": "Savings Account",

		"account_details.title":  "Client Account Details",
		"account_details.filter": "Filter by Client",
		"account_details.choose": "Please choose a client",
		"account_details.list":   "Account List",
		"account_details.show":   "Show",

		"account.card_title": "{0} account",
		"account.balance":    "Balance",
		"account.client_id":  "Client ID",
		"account.id":         "Account ID",
	},
	"fr": {
		ErrLoadData:         "Erreur lors du chargement des données",
		ErrLoadClients:      "Erreur lors du chargement des clients",
		ErrLoadAccounts:     "Erreur lors du chargement des comptes",
		ErrAddClient:        "Erreur lors de l'ajout du client",
		ErrLookupClient:     "Client non trouvé ou erreur lors de la recherche",
		ErrCreateAccount:    "Erreur lors de la création du compte",
		ErrLookupAccount:    "Compte non trouvé ou erreur lors de la recherche",
		ErrInvalidID:        "Veuillez entrer un ID valide.",
		ErrFormInvalid:      "Veuillez remplir tous les champs correctement.",
		ErrClientIDNotFound: "Client avec ID {0} non trouvé.",
		ErrClientHasType:    "Le client a déjà un compte {0}.",
		ErrClientNotListed:  "Le client {0} ne figure pas dans la liste.",

		OkClientAdded:    "Client ajouté avec succès !",
		OkClientFound:    "Client ID {0} trouvé !",
		OkAccountCreated: "Compte créé avec succès !",
		OkAccountFound:   "Compte ID {0} trouvé !",
		OkAccountsShown:  "Comptes du client ID {0} affichés !",

		FormNameRequired:    "Le nom est requis.",
		FormEmailRequired:   "L'email est requis.",
		FormEmailInvalid:    "Veuillez entrer un email valide.",
		FormBalanceNegative: "Le solde ne peut pas être négatif",
		FormBalanceInvalid:  "Veuillez entrer un montant valide.",
		FormTypeRequired:    "Sélectionnez un type",
		FormClientRequired:  "Sélectionnez un client",

		"nav.brand":           "Banque",
		"nav.dashboard":       "Tableau de bord",
		"nav.clients":         "Clients",
		"nav.client_details":  "Détails Clients",
		"nav.accounts":        "Comptes",
		"nav.account_details": "Détails Comptes",

		"common.loading": "Chargement…",
		"common.close":   "Fermer",
		"common.back":    "Retour à la Gestion",
		"common.search":  "Rechercher",

		"empty.accounts":        "Aucun compte trouvé.",
		"empty.clients":         "Aucun client trouvé.",
		"empty.client_accounts": "Aucun compte trouvé pour ce client.",
		"empty.selection":       "Aucun client sélectionné.",

		"dashboard.title":           "Tableau de Bord Bancaire",
		"dashboard.total":           "Total Clients",
		"dashboard.manage_clients":  "Gérer les Clients",
		"dashboard.manage_accounts": "Gérer les Comptes",

		"clients.title":    "Gestion des Clients",
		"clients.add":      "Ajouter un Client",
		"clients.search":   "Rechercher un Client par ID",
		"clients.view_all": "Voir tous les clients",
		"clients.found":    "Client trouvé",

		"form.name":           "Nom",
		"form.email":          "Email",
		"form.id":             "ID",
		"form.submit_client":  "Ajouter le Client",
		"form.balance":        "Solde Initial (€)",
		"form.type":           "Type de Compte",
		"form.client":         "Client",
		"form.submit_account": "Créer le Compte",

		"client_details.title":       "Détails des Clients",
		"client_details.list":        "Liste des Clients",
		"client_details.view":        "Voir Détails & Comptes",
		"client_details.modal_title": "Détails & Comptes de {0}",
		"client_details.accounts":    "Comptes Associés",

		"accounts.title":    "Gestion des Comptes Bancaires",
		"accounts.create":   "Créer un Nouveau Compte",
		"accounts.search":   "Rechercher un Compte par ID",
		"accounts.view_all": "Voir tous les comptes",
		"accounts.found":    "Compte trouvé",

		"account_type.CURRENT": "Compte Courant",
		"account_type.SAVINGS": "Compte Épargne",

		"account_details.title":  "Détails des Comptes Clients",
		"account_details.filter": "Filtrer par Client",
		"account_details.choose": "Veuillez choisir un client",
		"account_details.list":   "Liste des Comptes",
		"account_details.show":   "Afficher",

		"account.card_title": "Compte {0}",
		"account.balance":    "Solde",
		"account.client_id":  "Client ID",
		"account.id":         "ID Compte",
	},
}
