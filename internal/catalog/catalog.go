// Package catalog holds the built-in scheme data used whenever the
// external scheme store is unreachable or has no record for a category.
// It is the single authoritative fallback copy: the resolver, the audio
// endpoint and any offline caller all read from here.
package catalog

import "yojana-sahayak/internal/models"

var schemes = []models.Scheme{
	{
		SchemeID: "PM_KISAN",
		Category: models.CategoryFarmer,
		Name: models.LocalizedText{
			"hi": "पीएम किसान सम्मान निधि योजना",
			"en": "PM Kisan Samman Nidhi Yojana",
		},
		Eligibility: models.LocalizedText{
			"hi": "छोटे एवं सीमांत किसान जिनके पास 2 हेक्टेयर से कम भूमि है।",
			"en": "Small and marginal farmers with less than 2 hectares of land.",
		},
		Benefit: models.LocalizedText{
			"hi": "प्रति वर्ष ₹6,000 — तीन किस्तों में ₹2,000।",
			"en": "₹6,000 per year — ₹2,000 in three instalments.",
		},
		Documents: []models.LocalizedText{
			{"hi": "आधार कार्ड", "en": "Aadhaar Card"},
			{"hi": "बैंक खाता पासबुक", "en": "Bank Account Passbook"},
			{"hi": "भूमि के कागज़ात", "en": "Land Records"},
			{"hi": "मोबाइल नंबर", "en": "Mobile Number"},
		},
		Steps: []models.Step{
			{
				Title:       models.LocalizedText{"hi": "वेबसाइट खोलें", "en": "Open the website"},
				Description: models.LocalizedText{"hi": "वेबसाइट खोलें: https://pmkisan.gov.in", "en": "Open website: https://pmkisan.gov.in"},
				Link:        "https://pmkisan.gov.in",
				Action:      models.ActionLink,
			},
			{
				Title:       models.LocalizedText{"hi": "पंजीकरण चुनें", "en": "Choose registration"},
				Description: models.LocalizedText{"hi": "\"New Farmer Registration\" पर क्लिक करें", "en": "Click \"New Farmer Registration\""},
				Action:      models.ActionClick,
			},
			{
				Title:       models.LocalizedText{"hi": "आधार भरें", "en": "Enter Aadhaar"},
				Description: models.LocalizedText{"hi": "अपना आधार नंबर भरें", "en": "Enter your Aadhaar number"},
				Input:       models.LocalizedText{"hi": "12 अंकों का आधार नंबर", "en": "12-digit Aadhaar number"},
				Action:      models.ActionFill,
			},
			{
				Title:       models.LocalizedText{"hi": "बैंक विवरण", "en": "Bank details"},
				Description: models.LocalizedText{"hi": "बैंक खाते की जानकारी भरें", "en": "Fill in bank account details"},
				Input:       models.LocalizedText{"hi": "खाता संख्या और IFSC", "en": "Account number and IFSC"},
				Action:      models.ActionFill,
			},
			{
				Title:       models.LocalizedText{"hi": "भूमि विवरण", "en": "Land details"},
				Description: models.LocalizedText{"hi": "भूमि की जानकारी भरें", "en": "Enter land details"},
				Input:       models.LocalizedText{"hi": "खसरा / खतौनी संख्या", "en": "Khasra / Khatauni number"},
				Action:      models.ActionFill,
			},
			{
				Title:       models.LocalizedText{"hi": "फ़ॉर्म जमा करें", "en": "Submit the form"},
				Description: models.LocalizedText{"hi": "फ़ॉर्म जमा करें", "en": "Submit the form"},
				Action:      models.ActionSubmit,
			},
		},
		Helpline:   "155261",
		GovWebsite: "https://pmkisan.gov.in",
	},
	{
		SchemeID: "PM_VIDYALAKSHMI",
		Category: models.CategoryStudent,
		Name: models.LocalizedText{
			"hi": "पीएम विद्यालक्ष्मी योजना",
			"en": "PM Vidyalakshmi Yojana",
		},
		Eligibility: models.LocalizedText{
			"hi": "उच्च शिक्षा के लिए ऋण की आवश्यकता वाले विद्यार्थी।",
			"en": "Students who need loans for higher education.",
		},
		Benefit: models.LocalizedText{
			"hi": "कम ब्याज दर पर शिक्षा ऋण।",
			"en": "Education loan at low interest rates.",
		},
		Documents: []models.LocalizedText{
			{"hi": "आधार कार्ड", "en": "Aadhaar Card"},
			{"hi": "प्रवेश पत्र", "en": "Admission Letter"},
			{"hi": "अंकतालिका", "en": "Marksheet"},
			{"hi": "आय प्रमाण पत्र", "en": "Income Certificate"},
			{"hi": "बैंक खाता", "en": "Bank Account"},
		},
		Steps: []models.Step{
			{
				Title:       models.LocalizedText{"hi": "वेबसाइट खोलें", "en": "Open the website"},
				Description: models.LocalizedText{"hi": "वेबसाइट खोलें: https://www.vidyalakshmi.co.in", "en": "Open website: https://www.vidyalakshmi.co.in"},
				Link:        "https://www.vidyalakshmi.co.in",
				Action:      models.ActionLink,
			},
			{
				Title:       models.LocalizedText{"hi": "पंजीकरण करें", "en": "Register"},
				Description: models.LocalizedText{"hi": "\"Register\" पर क्लिक करें", "en": "Click \"Register\""},
				Action:      models.ActionClick,
			},
			{
				Title:       models.LocalizedText{"hi": "कॉलेज चुनें", "en": "Select college"},
				Description: models.LocalizedText{"hi": "कॉलेज और पाठ्यक्रम चुनें", "en": "Select college and course"},
				Action:      models.ActionFill,
			},
			{
				Title:       models.LocalizedText{"hi": "ऋण राशि", "en": "Loan amount"},
				Description: models.LocalizedText{"hi": "ऋण राशि भरें", "en": "Enter loan amount"},
				Input:       models.LocalizedText{"hi": "आवश्यक ऋण राशि", "en": "Required loan amount"},
				Action:      models.ActionFill,
			},
			{
				Title:       models.LocalizedText{"hi": "दस्तावेज़ अपलोड करें", "en": "Upload documents"},
				Description: models.LocalizedText{"hi": "दस्तावेज़ अपलोड करें", "en": "Upload documents"},
				Action:      models.ActionFill,
			},
			{
				Title:       models.LocalizedText{"hi": "आवेदन करें", "en": "Apply"},
				Description: models.LocalizedText{"hi": "बैंक चुनें और आवेदन करें", "en": "Select bank and apply"},
				Action:      models.ActionSubmit,
			},
		},
		GovWebsite: "https://www.vidyalakshmi.co.in",
	},
	{
		SchemeID: "PM_UJJWALA",
		Category: models.CategoryWoman,
		Name: models.LocalizedText{
			"hi": "प्रधानमंत्री उज्ज्वला योजना",
			"en": "Pradhan Mantri Ujjwala Yojana",
		},
		Eligibility: models.LocalizedText{
			"hi": "बीपीएल परिवार की 18 वर्ष से अधिक आयु की महिलाएँ।",
			"en": "Women above 18 from BPL families.",
		},
		Benefit: models.LocalizedText{
			"hi": "निःशुल्क एलपीजी कनेक्शन, ₹1,600 की सब्सिडी।",
			"en": "Free LPG connection with ₹1,600 subsidy.",
		},
		Documents: []models.LocalizedText{
			{"hi": "आधार कार्ड", "en": "Aadhaar Card"},
			{"hi": "बीपीएल राशन कार्ड", "en": "BPL Ration Card"},
			{"hi": "बैंक खाता पासबुक", "en": "Bank Account Passbook"},
			{"hi": "पासपोर्ट साइज़ फ़ोटो", "en": "Passport Photo"},
		},
		Steps: []models.Step{
			{
				Title:       models.LocalizedText{"hi": "वितरक के पास जाएँ", "en": "Visit distributor"},
				Description: models.LocalizedText{"hi": "नज़दीकी एलपीजी वितरक के पास जाएँ", "en": "Visit nearest LPG distributor"},
				Action:      models.ActionInfo,
			},
			{
				Title:       models.LocalizedText{"hi": "फ़ॉर्म लें", "en": "Get the form"},
				Description: models.LocalizedText{"hi": "उज्ज्वला योजना का फ़ॉर्म लें", "en": "Get the Ujjwala Yojana form"},
				Action:      models.ActionInfo,
			},
			{
				Title:       models.LocalizedText{"hi": "जानकारी भरें", "en": "Fill in details"},
				Description: models.LocalizedText{"hi": "फ़ॉर्म में जानकारी भरें", "en": "Fill in your details"},
				Action:      models.ActionFill,
			},
			{
				Title:       models.LocalizedText{"hi": "दस्तावेज़ संलग्न करें", "en": "Attach documents"},
				Description: models.LocalizedText{"hi": "दस्तावेज़ों की प्रति संलग्न करें", "en": "Attach document copies"},
				Action:      models.ActionFill,
			},
			{
				Title:       models.LocalizedText{"hi": "केवाईसी पूर्ण करें", "en": "Complete KYC"},
				Description: models.LocalizedText{"hi": "केवाईसी पूर्ण करें", "en": "Complete KYC verification"},
				Action:      models.ActionSubmit,
			},
		},
		Helpline:   "1800-266-6696",
		GovWebsite: "https://www.pmuy.gov.in",
	},
}

// ByCategory returns the built-in scheme for a category. Every supported
// category has exactly one entry, so this cannot miss for a valid Category.
func ByCategory(category models.Category) *models.Scheme {
	for i := range schemes {
		if schemes[i].Category == category {
			s := schemes[i]
			return &s
		}
	}
	// Unknown categories cannot happen for values produced by the
	// classifier; keep the fallback chain closed anyway.
	s := schemes[0]
	return &s
}

// ByID returns the built-in scheme with the given scheme id, or nil.
func ByID(schemeID string) *models.Scheme {
	for i := range schemes {
		if schemes[i].SchemeID == schemeID {
			s := schemes[i]
			return &s
		}
	}
	return nil
}

// All returns a copy of every built-in scheme.
func All() []models.Scheme {
	out := make([]models.Scheme, len(schemes))
	copy(out, schemes)
	return out
}
