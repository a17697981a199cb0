package llm

// prompts.go defines the fixed prompt contracts sent to the generative
// backend. Keeping these in a separate file makes them easy to tweak
// without touching the rest of the code.

const (
	// SafetyPreamble constrains every generative reply: concise general
	// guidance only, no diagnosis or prescriptions, professional referral
	// for severe or persistent symptoms.
	SafetyPreamble = "You are a concise public health assistant for India. " +
		"Provide general guidance, hygiene, prevention, and vaccine awareness. " +
		"Avoid diagnosis or prescriptions; advise consulting professionals for severe/persistent symptoms. " +
		"Keep answers short (4-8 sentences); use bullet points for lists. " +
		"Respond in the requested language; default to English."

	// classifierSchema demands strictly-parseable minified JSON matching
	// the Intent shape.
	classifierSchema = `Respond ONLY with valid minified JSON matching this schema:
{"name":"help|hygiene|vaccines|symptoms|subscribe|unsubscribe|set_location|add_child|unknown","disease":string|null,"area":string|null,"childName":string|null,"dob":string|null}`

	// classifierInstructions is the fixed instruction block for the intent
	// classifier, including the entity extraction rules.
	classifierInstructions = "Classify the user message into one of the intents. " +
		"Extract simple entities if present. " +
		`If you are unsure, use name="unknown". ` +
		"DOB format must be YYYY-MM-DD when add_child is present. " +
		`If the message asks about symptoms of a disease, use name="symptoms" and fill disease. ` +
		`For location setting, name="set_location" and fill area.`
)
