package i18n

var translations = map[string]map[string]string{
	"fr": {
		"site.name":                  "ParkingAssist",
		"nav.home":                   "Accueil",
		"nav.booking":                "Réservation",
		"home.title":                 "Réservez votre place de parking sans stress",
		"home.subtitle":              "Nous nous occupons des démarches de réservation de stationnement pour vos déménagements, travaux et livraisons.",
		"home.cta":                   "Faire une demande",
		"booking.title":              "Demande de réservation de parking",
		"booking.availableFor":       "Service disponible pour le",
		"booking.cantonGeneva":       "canton de Genève",
		"booking.cantonVaud":         "canton de Vaud",
		"booking.and":                "et le",
		"booking.submit":             "Envoyer la demande",
		"booking.requiredFields":     "Merci de remplir tous les champs obligatoires.",
		"booking.sentAlert":          "Merci ! Votre demande a bien été envoyée.",
		"booking.errorGeneric":       "Une erreur est survenue lors de l'envoi. Veuillez réessayer.",
		"booking.firstName":          "Prénom",
		"booking.lastName":           "Nom",
		"booking.company":            "Entreprise (facultatif)",
		"booking.city":               "Ville",
		"booking.postalCode":         "Code postal",
		"booking.address":            "Adresse",
		"booking.email":              "E-mail",
		"booking.phone":              "Téléphone",
		"booking.reason":             "Motif",
		"booking.reason.Moving":      "Déménagement",
		"booking.reason.Renovation":  "Travaux",
		"booking.reason.Delivery":    "Livraison",
		"booking.reason.Other":       "Autre",
		"booking.numberOfSpots":      "Nombre de places",
		"booking.requiredLength":     "Longueur nécessaire (m, facultatif)",
		"booking.startDate":          "Date de début",
		"booking.startTime":          "Heure de début",
		"booking.endDate":            "Date de fin",
		"booking.endTime":            "Heure de fin",
		"booking.vehicleDescription": "Description du véhicule",
	},
	"en": {
		"site.name":                  "ParkingAssist",
		"nav.home":                   "Home",
		"nav.booking":                "Booking",
		"home.title":                 "Reserve your parking spot without the hassle",
		"home.subtitle":              "We handle the parking reservation paperwork for your moves, renovations and deliveries.",
		"home.cta":                   "Make a request",
		"booking.title":              "Parking reservation request",
		"booking.availableFor":       "Service available for the",
		"booking.cantonGeneva":       "canton of Geneva",
		"booking.cantonVaud":         "canton of Vaud",
		"booking.and":                "and the",
		"booking.submit":             "Send request",
		"booking.requiredFields":     "Please fill in all required fields.",
		"booking.sentAlert":          "Thank you! Your request has been sent.",
		"booking.errorGeneric":       "Something went wrong while sending. Please try again.",
		"booking.firstName":          "First name",
		"booking.lastName":           "Last name",
		"booking.company":            "Company (optional)",
		"booking.city":               "City",
		"booking.postalCode":         "Postal code",
		"booking.address":            "Address",
		"booking.email":              "Email",
		"booking.phone":              "Phone",
		"booking.reason":             "Reason",
		"booking.reason.Moving":      "Moving",
		"booking.reason.Renovation":  "Renovation",
		"booking.reason.Delivery":    "Delivery",
		"booking.reason.Other":       "Other",
		"booking.numberOfSpots":      "Number of spots",
		"booking.requiredLength":     "Required length (m, optional)",
		"booking.startDate":          "Start date",
		"booking.startTime":          "Start time",
		"booking.endDate":            "End date",
		"booking.endTime":            "End time",
		"booking.vehicleDescription": "Vehicle description",
	},
}
