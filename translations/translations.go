// Package translations holds the static UI dictionaries served to the
// website frontend, keyed by two-letter language code.
package translations

import (
	"strings"
)

// DefaultLanguage is used whenever a requested language is not supported.
const DefaultLanguage = "en"

var dictionaries = map[string]map[string]string{
	"en": {
		// Company information
		"company_name":        "Tropical Wood",
		"company_subtitle":    "A division of Roilux",
		"company_description": "Your premier source for high-quality wood products from Cameroon",

		// Navigation
		"nav_home":     "Home",
		"nav_about":    "About Us",
		"nav_products": "Our Products",
		"nav_visit":    "Visit Our Company",
		"nav_contact":  "Contact Us",

		// Home page
		"welcome_to":       "Welcome to",
		"hero_description": "Your premier source for high-quality wood products from Cameroon. From premium plywood to custom veneers, we deliver excellence worldwide.",
		"explore_products": "Explore Products",
		"schedule_tour":    "Schedule Virtual Tour",
		"ready_to_order":   "Ready to Order?",
		"sample_guarantee": "We can ship samples and guarantee quality production",
		"view_products":    "View Our Products",

		// Product categories
		"product_categories": "Our Product Categories",
		"plywood":            "Plywood",
		"melamine":           "Prefinished Melamine",
		"melamine_plywood":   "Prefinished Melamine Plywood",
		"veneer":             "Wood Veneer",
		"logs":               "Raw Wood Logs",

		// Features
		"premium_quality":       "Premium Quality",
		"premium_quality_desc":  "Finest wood products from Cameroon forests",
		"custom_solutions":      "Custom Solutions",
		"custom_solutions_desc": "Tailored to your specific requirements",
		"fast_production":       "Fast Production",
		"fast_production_desc":  "50+ containers monthly capacity",
		"global_shipping":       "Global Shipping",
		"global_shipping_desc":  "Worldwide delivery available",

		// Contact information
		"call_us":        "Call Us",
		"email_us":       "Email Us",
		"visit_us":       "Visit Us",
		"business_hours": "Business Hours",
		"monday_friday":  "Monday - Friday",
		"saturday":       "Saturday",
		"sunday":         "Sunday",
		"closed":         "Closed",

		// Forms
		"full_name":      "Full Name",
		"email_address":  "Email Address",
		"phone_number":   "Phone Number",
		"subject":        "Subject",
		"message":        "Message",
		"send_message":   "Send Message",
		"required_field": "Required field",

		// Virtual tour
		"virtual_tour_title":    "Schedule Your Virtual Tour",
		"virtual_tour_desc":     "Experience our facilities from anywhere in the world with a personalized virtual tour",
		"preferred_date":        "Preferred Date",
		"preferred_time":        "Preferred Time",
		"special_requests":      "Special Requests or Questions",
		"schedule_virtual_tour": "Schedule Virtual Tour",

		// Success messages
		"message_sent":    "Message sent successfully!",
		"tour_booked":     "Virtual tour request submitted successfully!",
		"order_submitted": "Order inquiry submitted successfully!",
		"contact_soon":    "We'll contact you within 24 hours",

		// Password reset
		"password_reset_sent":       "A password reset link has been sent to your email address.",
		"password_reset_subject":    "Reset your Tropical Wood admin password",
		"password_reset_successful": "Password has been reset successfully.",

		// Product specifications
		"specifications":   "Specifications",
		"thickness":        "Thickness",
		"sizes":            "Sizes",
		"wood_types":       "Wood Types",
		"applications":     "Applications",
		"water_resistance": "Water Resistance",
		"strength":         "Strength",

		// Location
		"cameroon": "Cameroon",
		"abonbang": "Abonbang, Cameroon",
	},

	"fr": {
		// Company information
		"company_name":        "Tropical Wood",
		"company_subtitle":    "Une division de Roilux",
		"company_description": "Votre source principale pour des produits en bois de haute qualité du Cameroun",

		// Navigation
		"nav_home":     "Accueil",
		"nav_about":    "À Propos",
		"nav_products": "Nos Produits",
		"nav_visit":    "Visitez Notre Entreprise",
		"nav_contact":  "Contactez-Nous",

		// Home page
		"welcome_to":       "Bienvenue chez",
		"hero_description": "Votre source principale pour des produits en bois de haute qualité du Cameroun. Du contreplaqué premium aux placages sur mesure, nous livrons l'excellence dans le monde entier.",
		"explore_products": "Explorer les Produits",
		"schedule_tour":    "Planifier une Visite Virtuelle",
		"ready_to_order":   "Prêt à Commander?",
		"sample_guarantee": "Nous pouvons expédier des échantillons et garantir une production de qualité",
		"view_products":    "Voir Nos Produits",

		// Product categories
		"product_categories": "Nos Catégories de Produits",
		"plywood":            "Contreplaqué",
		"melamine":           "Mélaminé Préfini",
		"melamine_plywood":   "Contreplaqué Mélaminé Préfini",
		"veneer":             "Placage de Bois",
		"logs":               "Grumes Brutes",

		// Features
		"premium_quality":       "Qualité Premium",
		"premium_quality_desc":  "Les meilleurs produits en bois des forêts camerounaises",
		"custom_solutions":      "Solutions Personnalisées",
		"custom_solutions_desc": "Adaptées à vos exigences spécifiques",
		"fast_production":       "Production Rapide",
		"fast_production_desc":  "Capacité de 50+ conteneurs par mois",
		"global_shipping":       "Expédition Mondiale",
		"global_shipping_desc":  "Livraison disponible dans le monde entier",

		// Contact information
		"call_us":        "Appelez-Nous",
		"email_us":       "Écrivez-Nous",
		"visit_us":       "Visitez-Nous",
		"business_hours": "Heures d'Ouverture",
		"monday_friday":  "Lundi - Vendredi",
		"saturday":       "Samedi",
		"sunday":         "Dimanche",
		"closed":         "Fermé",

		// Forms
		"full_name":      "Nom Complet",
		"email_address":  "Adresse Email",
		"phone_number":   "Numéro de Téléphone",
		"subject":        "Sujet",
		"message":        "Message",
		"send_message":   "Envoyer le Message",
		"required_field": "Champ obligatoire",

		// Virtual tour
		"virtual_tour_title":    "Planifiez Votre Visite Virtuelle",
		"virtual_tour_desc":     "Découvrez nos installations depuis n'importe où dans le monde avec une visite virtuelle personnalisée",
		"preferred_date":        "Date Préférée",
		"preferred_time":        "Heure Préférée",
		"special_requests":      "Demandes Spéciales ou Questions",
		"schedule_virtual_tour": "Planifier une Visite Virtuelle",

		// Success messages
		"message_sent":    "Message envoyé avec succès!",
		"tour_booked":     "Demande de visite virtuelle soumise avec succès!",
		"order_submitted": "Demande de commande soumise avec succès!",
		"contact_soon":    "Nous vous contacterons dans les 24 heures",

		// Password reset
		"password_reset_sent":       "Un lien de réinitialisation a été envoyé à votre adresse email.",
		"password_reset_subject":    "Réinitialisez votre mot de passe admin Tropical Wood",
		"password_reset_successful": "Le mot de passe a été réinitialisé avec succès.",

		// Product specifications
		"specifications":   "Spécifications",
		"thickness":        "Épaisseur",
		"sizes":            "Tailles",
		"wood_types":       "Types de Bois",
		"applications":     "Applications",
		"water_resistance": "Résistance à l'Eau",
		"strength":         "Résistance",

		// Location
		"cameroon": "Cameroun",
		"abonbang": "Abonbang, Cameroun",
	},
}

// Countries whose visitors default to French.
var frenchCountries = map[string]bool{
	"CM": true, // Cameroon
	"CI": true, // Ivory Coast
	"SN": true, // Senegal
	"ML": true, // Mali
	"BF": true, // Burkina Faso
	"NE": true, // Niger
	"TD": true, // Chad
	"CF": true, // Central African Republic
	"GA": true, // Gabon
	"CG": true, // Republic of the Congo
	"CD": true, // Democratic Republic of the Congo
	"DJ": true, // Djibouti
	"KM": true, // Comoros
	"MG": true, // Madagascar
	"SC": true, // Seychelles
	"FR": true, // France
	"BE": true, // Belgium
	"CH": true, // Switzerland
	"CA": true, // Canada
	"MC": true, // Monaco
	"LU": true, // Luxembourg
	"AD": true, // Andorra
}

// Supported reports whether lang has a dictionary.
func Supported(lang string) bool {
	_, ok := dictionaries[lang]
	return ok
}

// Languages returns the supported language codes.
func Languages() []string {
	langs := make([]string, 0, len(dictionaries))
	for lang := range dictionaries {
		langs = append(langs, lang)
	}
	return langs
}

// All returns the full dictionary for lang, or false if unsupported.
func All(lang string) (map[string]string, bool) {
	dict, ok := dictionaries[lang]
	if !ok {
		return nil, false
	}
	// Copy so callers cannot mutate the shared dictionary.
	out := make(map[string]string, len(dict))
	for k, v := range dict {
		out[k] = v
	}
	return out, true
}

// T returns the translation of key in lang, falling back to the default
// language and finally to the key itself.
func T(key, lang string) string {
	if dict, ok := dictionaries[lang]; ok {
		if v, ok := dict[key]; ok {
			return v
		}
	}
	if v, ok := dictionaries[DefaultLanguage][key]; ok {
		return v
	}
	return key
}

// DetectLanguage picks a language from an ISO country code and an
// Accept-Language header value, defaulting to English.
func DetectLanguage(countryCode, acceptLanguage string) string {
	if countryCode != "" && frenchCountries[strings.ToUpper(countryCode)] {
		return "fr"
	}
	if strings.Contains(strings.ToLower(acceptLanguage), "fr") {
		return "fr"
	}
	return DefaultLanguage
}
