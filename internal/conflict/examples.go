package conflict

// Example is a concrete conflict illustration used in documentation and
// detection prompts.
type Example struct {
	// Input is the user policy text exhibiting the conflict.
	Input string
	// Explanation says why the input conflicts.
	Explanation string
	// Resolution shows how the conflict is resolved.
	Resolution string
}

// examples maps conflict types to their documented illustration. Not every
// type carries one; DetectionPrompt degrades gracefully.
var examples = map[Type]Example{
	TypeUnmeasurable: {
		Input:       "Data must be used responsibly for urgent requests",
		Explanation: "'Responsibly' and 'urgent' are subjective and cannot be measured consistently",
		Resolution:  "Replace with: 'Data must be attributed to source and used only for requests submitted within 48 hours of deadline'",
	},
	TypeVagueBroad: {
		Input:       "Everyone can access everything for any purpose",
		Explanation: "Universal quantifiers create an unimplementable, overly permissive policy",
		Resolution:  "Specify: 'Registered researchers can access datasets X, Y, Z for educational or non-commercial research purposes'",
	},
	TypeSpatialHierarchy: {
		Input:       "Access permitted in Germany but prohibited in all EU countries",
		Explanation: "Germany is contained in the EU, so permission and prohibition contradict",
		Resolution:  "Apply specific-over-general: allow in Germany (specific) despite the EU prohibition (general), or clarify intent",
	},
	TypeTemporalOverlap: {
		Input:       "Access allowed 9am-5pm Monday to Friday, but prohibited 2pm-6pm every day",
		Explanation: "The 2pm-5pm overlap on weekdays has contradictory rules",
		Resolution:  "Apply prohibit-on-ambiguity: block access 2pm-5pm on weekdays",
	},
	TypeActionHierarchy: {
		Input:       "Users can share the dataset but cannot distribute it",
		Explanation: "In ODRL, 'share' is a subclass of 'distribute'",
		Resolution:  "Prohibit sharing since it is semantically a form of distribution",
	},
	TypeCircularDependency: {
		Input:       "Access requires Committee approval; Committee needs Rights verification; Rights needs preliminary access",
		Explanation: "Cycle detected: Access -> Committee -> Rights -> Access (impossible to start)",
		Resolution:  "Break the cycle: allow preliminary access without Rights verification, or delegate Rights verification to an external party",
	},
	TypeRoleHierarchy: {
		Input:       "Managers must access data weekly; administrators cannot access data; all managers are administrators",
		Explanation: "If managers are contained in administrators, the requirement plus prohibition is impossible",
		Resolution:  "Clarify the role hierarchy: either managers are not administrators, or create an exception for managers",
	},
}

// ExampleFor returns the documented example for a conflict type, if any.
func ExampleFor(t Type) (Example, bool) {
	e, ok := examples[t]
	return e, ok
}
