package content

import "swasthya-bot/internal/lang"

// i18n is the per-language string bundle. English is the fallback and must
// always be present.
var i18n = map[lang.Language]Strings{
	lang.English: {
		Welcome:        "Hello! I'm your Public Health Assistant. Ask about hygiene, symptoms, or vaccines. Type 'subscribe' for outbreak alerts or 'help' for options.",
		Help:           "Options: hygiene | symptoms <disease> | vaccines | add child <Name> <YYYY-MM-DD> | subscribe | unsubscribe | set location <your area>",
		Unknown:        "Sorry, I didn't understand. Type 'help' to see options.",
		Subscribed:     "You are now subscribed to local outbreak alerts.",
		Unsubscribed:   "You have been unsubscribed from alerts.",
		LocationSaved:  "Location saved. You'll receive area-specific alerts.",
		VaccinesInfo:   "Vaccination info: Children need timely doses (BCG, DPT, OPV, HepB, MMR). Adults: Tetanus boosters, influenza for seniors, COVID boosters per advisory.",
		HygieneInfo:    "Preventive care: wash hands with soap, safe drinking water, mosquito control, balanced diet, regular exercise, and adequate sleep.",
		AddedChild:     "Added %s. We'll send reminders based on due dates.",
		OutbreakAlert:  "Health advisory for %s: %s.",
		ReminderPrefix: "Vaccination reminder:",
		SymptomsPrefix: "Common symptoms of %s:",
	},
	lang.Hindi: {
		Welcome:        "नमस्ते! मैं आपका स्वास्थ्य सहायक हूँ। स्वच्छता, लक्षण या टीकाकरण के बारे में पूछें। अलर्ट के लिए 'subscribe' लिखें या विकल्पों के लिए 'help'।",
		Help:           "विकल्प: hygiene | symptoms <रोग> | vaccines | add child <नाम> <YYYY-MM-DD> | subscribe | unsubscribe | set location <क्षेत्र>",
		Unknown:        "क्षमा करें, मैं समझ नहीं पाया। विकल्पों के लिए 'help' लिखें।",
		Subscribed:     "आप स्थानीय अलर्ट के लिए सदस्यता ले चुके हैं।",
		Unsubscribed:   "आपने अलर्ट सदस्यता रद्द कर दी है।",
		LocationSaved:  "स्थान सहेजा गया। आपको क्षेत्र-विशिष्ट अलर्ट मिलेंगे।",
		VaccinesInfo:   "टीकाकरण जानकारी: बच्चों के लिए BCG, DPT, OPV, HepB, MMR समय पर। वयस्क: टेटनस बूस्टर, वरिष्ठों के लिए इन्फ्लूएंजा, सलाहानुसार COVID बूस्टर।",
		HygieneInfo:    "रोकथाम: साबुन से हाथ धोएँ, स्वच्छ पानी, मच्छर नियंत्रण, संतुलित आहार, व्यायाम, और पर्याप्त नींद।",
		AddedChild:     "%s जोड़ा गया। हम नियत तिथियों के अनुसार रिमाइंडर भेजेंगे।",
		OutbreakAlert:  "%s के लिए स्वास्थ्य सलाह: %s.",
		ReminderPrefix: "टीकाकरण रिमाइंडर:",
		SymptomsPrefix: "%s के सामान्य लक्षण:",
	},
	lang.Bengali: {
		Welcome:        "হ্যালো! আমি আপনার স্বাস্থ্য সহকারী। স্বাস্থ্যবিধি, উপসর্গ বা টিকা সম্পর্কে জিজ্ঞাসা করুন। সতর্কতার জন্য 'subscribe' বা বিকল্পের জন্য 'help' লিখুন।",
		Help:           "বিকল্প: hygiene | symptoms <রোগ> | vaccines | add child <নাম> <YYYY-MM-DD> | subscribe | unsubscribe | set location <এলাকা>",
		Unknown:        "দুঃখিত, বুঝতে পারিনি। বিকল্পগুলোর জন্য 'help' লিখুন।",
		Subscribed:     "আপনি স্থানীয় সতর্কতায় সাবস্ক্রাইব করেছেন।",
		Unsubscribed:   "আপনি সতর্কতা থেকে আনসাবস্ক্রাইব করেছেন।",
		LocationSaved:  "অবস্থান সংরক্ষিত। এলাকা-ভিত্তিক সতর্কতা পাবেন।",
		VaccinesInfo:   "টিকা তথ্য: শিশুদের জন্য BCG, DPT, OPV, HepB, MMR সময়মতো। প্রাপ্তবয়স্ক: টিটেনাস বুস্টার, সিনিয়রদের জন্য ইনফ্লুয়েঞ্জা, পরামর্শ অনুযায়ী COVID বুস্টার।",
		HygieneInfo:    "প্রতিরোধ: সাবান দিয়ে হাত ধোয়া, নিরাপদ পানি, মশা নিয়ন্ত্রণ, সুষম খাদ্য, ব্যায়াম, পর্যাপ্ত ঘুম।",
		AddedChild:     "%s যোগ করা হয়েছে। নির্ধারিত তারিখ অনুযায়ী রিমাইন্ডার পাঠানো হবে।",
		OutbreakAlert:  "%s এর জন্য স্বাস্থ্য পরামর্শ: %s.",
		ReminderPrefix: "টিকাদান রিমাইন্ডার:",
		SymptomsPrefix: "%s এর সাধারণ উপসর্গ:",
	},
	lang.Telugu: {
		Welcome:        "హలో! నేను మీ ఆరోగ్య సహాయకుడు. పరిశుభ్రత, లక్షణాలు లేదా టీకాల గురించి అడగండి. అలర్ట్స్ కోసం 'subscribe' లేదా ఎంపికల కోసం 'help' టైప్ చేయండి.",
		Help:           "ఎంపికలు: hygiene | symptoms <వ్యాధి> | vaccines | add child <పేరు> <YYYY-MM-DD> | subscribe | unsubscribe | set location <ప్రాంతం>",
		Unknown:        "క్షమించండి, అర్థం కాలేదు. ఎంపికల కోసం 'help' టైప్ చేయండి.",
		Subscribed:     "మీరు స్థానిక అలర్ట్స్ కోసం సభ్యత్వం పొందారు.",
		Unsubscribed:   "మీరు అలర్ట్స్ నుండి సభ్యత్వాన్ని రద్దు చేసుకున్నారు.",
		LocationSaved:  "ప్రాంతం సేవ్ చేయబడింది. ప్రాంతానుసారమైన అలర్ట్స్ అందుతాయి.",
		VaccinesInfo:   "టీకా సమాచారం: పిల్లలకు BCG, DPT, OPV, HepB, MMR సమయానికి. పెద్దలకు: టెటనస్ బూస్టర్, వృద్ధులకు ఇన్ఫ్లూయెంజా, సలహా ప్రకారం COVID బూస్టర్లు.",
		HygieneInfo:    "నిరోధం: సబ్బుతో చేతులు కడగడం, శుభ్రమైన నీరు, దోమ నియంత్రణ, సమతుల ఆహారం, వ్యాయామం, తగిన నిద్ర.",
		AddedChild:     "%s చేర్చబడింది. నిర్ణీత తేదీల ప్రకారం రిమైండర్లు పంపబడతాయి.",
		OutbreakAlert:  "%s కోసం ఆరోగ్య హెచ్చరిక: %s.",
		ReminderPrefix: "టీకా రిమైండర్:",
		SymptomsPrefix: "%s సాధారణ లక్షణాలు:",
	},
	lang.Marathi: {
		Welcome:        "नमस्कार! मी तुमचा आरोग्य सहायक आहे. स्वच्छता, लक्षणे किंवा लसीकरणाबद्दल विचारा. अलर्टसाठी 'subscribe' किंवा पर्यायांसाठी 'help' टाइप करा.",
		Help:           "पर्याय: hygiene | symptoms <रोग> | vaccines | add child <नाव> <YYYY-MM-DD> | subscribe | unsubscribe | set location <भाग>",
		Unknown:        "माफ करा, समजले नाही. पर्यायांसाठी 'help' टाइप करा.",
		Subscribed:     "आपण स्थानिक अलर्टसाठी सदस्यता घेतली आहे.",
		Unsubscribed:   "आपण अलर्ट सदस्यता रद्द केली आहे.",
		LocationSaved:  "स्थान जतन केले. क्षेत्रनिहाय अलर्ट मिळतील.",
		VaccinesInfo:   "लसीकरण माहिती: मुलांसाठी BCG, DPT, OPV, HepB, MMR वेळेवर. प्रौढ: टेटनस बुस्टर, ज्येष्ठांसाठी इन्फ्लूएंझा, सल्ल्यानुसार COVID बुस्टर.",
		HygieneInfo:    "प्रतिबंध: साबणाने हात धुवा, स्वच्छ पाणी, डास नियंत्रण, संतुलित आहार, व्यायाम, पुरेशी झोप.",
		AddedChild:     "%s जोडले. नियत तारखेनुसार स्मरणपत्रे पाठवू.",
		OutbreakAlert:  "%s साठी आरोग्य सूचना: %s.",
		ReminderPrefix: "लसीकरण स्मरणपत्र:",
		SymptomsPrefix: "%s ची सामान्य लक्षणे:",
	},
}

// symptomsKB is the static symptom knowledge base keyed by language then
// lowercased disease name.
var symptomsKB = map[lang.Language]map[string][]string{
	lang.English: {
		"malaria":   {"fever (often intermittent)", "chills", "sweats", "headache", "nausea"},
		"dengue":    {"high fever", "severe headache", "pain behind eyes", "joint/muscle pain"},
		"influenza": {"fever", "cough", "sore throat", "body aches", "fatigue"},
		"diarrhea":  {"loose stools", "abdominal cramps", "dehydration risk"},
	},
	lang.Hindi: {
		"malaria":   {"बुखार (रुक-रुक कर)", "कँपकँपी", "पसीना", "सिरदर्द", "जी मिचलाना"},
		"dengue":    {"तेज़ बुखार", "तेज़ सिरदर्द", "आँखों के पीछे दर्द", "जोड़/मांसपेशियों में दर्द"},
		"influenza": {"बुखार", "खाँसी", "गले में खराश", "दर्द", "थकान"},
		"diarrhea":  {"पतले दस्त", "पेट में दर्द", "डिहाइड्रेशन का खतरा"},
	},
	lang.Bengali: {
		"malaria":   {"জ্বর (থেমে থেমে)", "কাঁপুনি", "ঘাম", "মাথাব্যথা", "বমিভাব"},
		"dengue":    {"উচ্চ জ্বর", "তীব্র মাথাব্যথা", "চোখের পিছনে ব্যথা", "গাঁট/পেশীতে ব্যথা"},
		"influenza": {"জ্বর", "কাশি", "গলা ব্যথা", "শরীর ব্যথা", "ক্লান্তি"},
		"diarrhea":  {"পাতলা পায়খানা", "পেট ব্যথা", "ডিহাইড্রেশন ঝুঁকি"},
	},
	lang.Telugu: {
		"malaria":   {"జ్వరం (కొన్ని సార్లు)", "వణుకు", "చెమటలు", "తలనొప్పి", "వాంతులు"},
		"dengue":    {"అధిక జ్వరం", "తీవ్ర తలనొప్పి", "కళ్ల వెనుక నొప్పి", "కీళ్ల/కండరాల నొప్పి"},
		"influenza": {"జ్వరం", "దగ్గు", "గొంతు నొప్పి", "శరీర నొప్పులు", "అలసట"},
		"diarrhea":  {"విసర్జన ద్రవంగా", "కడుపునొప్పి", "డీహైడ్రేషన్ ప్రమాదం"},
	},
	lang.Marathi: {
		"malaria":   {"ताप (मधूनमधून)", "कंप", "घाम", "डोकेदुखी", "मळमळ"},
		"dengue":    {"उच्च ताप", "तीव्र डोकेदुखी", "डोळ्यांच्या मागे वेदना", "सांधे/स्नायू वेदना"},
		"influenza": {"ताप", "खोकला", "घसा खवखवणे", "शरीरदुखी", "थकवा"},
		"diarrhea":  {"सैल शौच", "पोटदुखी", "डिहायड्रेशनचा धोका"},
	},
}
