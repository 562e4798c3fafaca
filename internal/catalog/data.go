package catalog

var builtinExercises = []Exercise{
	{
		ID:                "wall-squat",
		Name:              "Wall Squat Hold",
		Description:       "A supported squat against a wall that builds leg strength while protecting your knees and lower back.",
		Difficulty:        DifficultyBeginner,
		TargetZones:       []string{"legs", "core"},
		SafetyTips:        []string{"Keep your back flat against the wall", "Knees should not extend past your toes"},
		DoList:            []string{"Keep feet shoulder-width apart", "Press your lower back into the wall", "Breathe steadily throughout"},
		DontList:          []string{"Let knees cave inward", "Hold your breath", "Go too deep if you feel pain"},
		Duration:          "30-60 seconds",
		Reps:              "3 sets",
		Contraindications: []string{},
		RelatedProductIDs: []string{"yoga-mat", "resistance-band"},
		ImageURL:          "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=400&h=300&fit=crop",
	},
	{
		ID:                "cat-cow",
		Name:              "Cat-Cow Stretch",
		Description:       "A gentle flow between two poses that warms up the spine and relieves tension in the back.",
		Difficulty:        DifficultyBeginner,
		TargetZones:       []string{"back", "core"},
		SafetyTips:        []string{"Move slowly and with control", "Sync movement with breath"},
		DoList:            []string{"Start on hands and knees", "Arch back up like a cat on exhale", "Drop belly and lift head on inhale"},
		DontList:          []string{"Rush through movements", "Strain your neck", "Hyperextend your spine"},
		Duration:          "1-2 minutes",
		Reps:              "10-15 cycles",
		Contraindications: []string{},
		RelatedProductIDs: []string{"yoga-mat", "foam-roller"},
		ImageURL:          "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400&h=300&fit=crop",
	},
	{
		ID:                "bird-dog",
		Name:              "Bird Dog",
		Description:       "A core stability exercise that strengthens the back, abs, and improves balance.",
		Difficulty:        DifficultyBeginner,
		TargetZones:       []string{"back", "core"},
		SafetyTips:        []string{"Keep your spine neutral", "Move slowly to maintain balance"},
		DoList:            []string{"Extend opposite arm and leg simultaneously", "Keep hips level", "Engage your core throughout"},
		DontList:          []string{"Arch your lower back", "Rotate your hips", "Hold your breath"},
		Duration:          "30 seconds each side",
		Reps:              "3 sets of 10",
		Contraindications: []string{"wrist"},
		RelatedProductIDs: []string{"yoga-mat", "knee-pad"},
		ImageURL:          "https://images.unsplash.com/photo-1518611012118-696072aa579a?w=400&h=300&fit=crop",
	},
	{
		ID:                "standing-hip-flexor",
		Name:              "Standing Hip Flexor Stretch",
		Description:       "Opens up tight hip flexors commonly caused by prolonged sitting.",
		Difficulty:        DifficultyBeginner,
		TargetZones:       []string{"legs", "back"},
		SafetyTips:        []string{"Use a wall or chair for balance if needed", "Keep your core engaged"},
		DoList:            []string{"Step one foot forward into a lunge", "Tuck your pelvis slightly", "Feel the stretch in the front of your back hip"},
		DontList:          []string{"Lean too far forward", "Let your knee go past your toes", "Arch your lower back"},
		Duration:          "30 seconds each side",
		Reps:              "2-3 sets",
		Contraindications: []string{"knee"},
		RelatedProductIDs: []string{"yoga-blocks", "balance-pad"},
		ImageURL:          "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=400&h=300&fit=crop",
	},
	{
		ID:                "plank",
		Name:              "Forearm Plank",
		Description:       "A fundamental core exercise that builds strength and endurance in the entire midsection.",
		Difficulty:        DifficultyIntermediate,
		TargetZones:       []string{"core", "shoulders", "full-body"},
		SafetyTips:        []string{"Keep your body in a straight line", "Engage your glutes"},
		DoList:            []string{"Stack shoulders over elbows", "Look at the floor to keep neck neutral", "Breathe steadily"},
		DontList:          []string{"Let your hips sag", "Pike your hips up too high", "Hold your breath"},
		Duration:          "30-60 seconds",
		Reps:              "3 sets",
		Contraindications: []string{"shoulder", "wrist"},
		RelatedProductIDs: []string{"yoga-mat", "ab-wheel"},
		ImageURL:          "https://images.unsplash.com/photo-1566241142559-40e1dab266c6?w=400&h=300&fit=crop",
	},
	{
		ID:                "glute-bridge",
		Name:              "Glute Bridge",
		Description:       "Activates and strengthens the glutes while relieving lower back tension.",
		Difficulty:        DifficultyBeginner,
		TargetZones:       []string{"legs", "back", "core"},
		SafetyTips:        []string{"Push through your heels", "Squeeze glutes at the top"},
		DoList:            []string{"Lie on your back with knees bent", "Lift hips until body forms a line", "Hold briefly at the top"},
		DontList:          []string{"Overarch your lower back", "Push through your toes", "Rush the movement"},
		Duration:          "10-15 reps",
		Reps:              "3 sets",
		Contraindications: []string{},
		RelatedProductIDs: []string{"yoga-mat", "resistance-band"},
		ImageURL:          "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop",
	},
	{
		ID:                "shoulder-rolls",
		Name:              "Shoulder Rolls",
		Description:       "Simple yet effective movement to release tension in the shoulders and upper back.",
		Difficulty:        DifficultyBeginner,
		TargetZones:       []string{"shoulders", "back"},
		SafetyTips:        []string{"Keep movements smooth and controlled", "Relax your arms by your sides"},
		DoList:            []string{"Roll shoulders forward in circles", "Then reverse direction", "Combine with deep breathing"},
		DontList:          []string{"Rush through the movement", "Tense your neck", "Shrug too aggressively"},
		Duration:          "1 minute",
		Reps:              "10 rolls each direction",
		Contraindications: []string{},
		RelatedProductIDs: []string{"massage-ball", "resistance-band"},
		ImageURL:          "https://images.unsplash.com/photo-1552196563-55cd4e45efb3?w=400&h=300&fit=crop",
	},
	{
		ID:                "seated-spinal-twist",
		Name:              "Seated Spinal Twist",
		Description:       "A gentle rotation that improves spinal mobility and relieves back stiffness.",
		Difficulty:        DifficultyBeginner,
		TargetZones:       []string{"back", "core"},
		SafetyTips:        []string{"Keep your spine tall", "Twist from your core, not your arms"},
		DoList:            []string{"Sit tall with legs extended", "Cross one leg over and twist toward it", "Use your arm for gentle support"},
		DontList:          []string{"Force the twist", "Round your back", "Hold your breath"},
		Duration:          "30 seconds each side",
		Reps:              "2-3 sets",
		Contraindications: []string{"back"},
		RelatedProductIDs: []string{"yoga-mat", "yoga-blocks"},
		ImageURL:          "https://images.unsplash.com/photo-1575052814086-f385e2e2ad1b?w=400&h=300&fit=crop",
	},
}

var builtinProducts = []Product{
	{
		ID:          "yoga-mat",
		Name:        "Comfort Yoga Mat 8mm",
		Description: "Extra cushioning for joint protection during floor exercises.",
		Price:       "€19.99",
		ShopURL:     "https://www.decathlon.com/collections/yoga-mats",
		ImageURL:    "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=300&h=200&fit=crop",
		Tags:        []string{"knee", "back", "yoga", "beginner"},
	},
	{
		ID:          "resistance-band",
		Name:        "Resistance Band Set",
		Description: "Progressive resistance for strength building without joint stress.",
		Price:       "€14.99",
		ShopURL:     "https://www.decathlon.com/collections/resistance-bands",
		ImageURL:    "https://images.unsplash.com/photo-1598289431512-b97b0917affc?w=300&h=200&fit=crop",
		Tags:        []string{"shoulder", "rehabilitation", "strength"},
	},
	{
		ID:          "foam-roller",
		Name:        "Recovery Foam Roller",
		Description: "Self-massage tool for muscle recovery and tension release.",
		Price:       "€24.99",
		ShopURL:     "https://www.decathlon.com/collections/foam-rollers",
		ImageURL:    "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=300&h=200&fit=crop",
		Tags:        []string{"back", "recovery", "muscle-tension"},
	},
	{
		ID:          "knee-support",
		Name:        "Knee Support Brace",
		Description: "Provides stability and compression for weak or injured knees.",
		Price:       "€16.99",
		ShopURL:     "https://www.decathlon.com/collections/knee-braces",
		ImageURL:    "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=200&fit=crop",
		Tags:        []string{"knee", "support", "injury-prevention"},
	},
	{
		ID:          "yoga-blocks",
		Name:        "Yoga Block Set (2 pcs)",
		Description: "Helps modify poses and maintain proper alignment.",
		Price:       "€12.99",
		ShopURL:     "https://www.decathlon.com/collections/yoga-blocks",
		ImageURL:    "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=300&h=200&fit=crop",
		Tags:        []string{"flexibility", "beginner", "alignment"},
	},
	{
		ID:          "massage-ball",
		Name:        "Trigger Point Massage Ball",
		Description: "Target specific muscle knots and tension points.",
		Price:       "€8.99",
		ShopURL:     "https://www.decathlon.com/collections/massage-balls",
		ImageURL:    "https://images.unsplash.com/photo-1552196563-55cd4e45efb3?w=300&h=200&fit=crop",
		Tags:        []string{"shoulder", "back", "recovery"},
	},
	{
		ID:          "balance-pad",
		Name:        "Balance Training Pad",
		Description: "Improves stability and proprioception for injury prevention.",
		Price:       "€22.99",
		ShopURL:     "https://www.decathlon.com/collections/balance-trainers",
		ImageURL:    "https://images.unsplash.com/photo-1518611012118-696072aa579a?w=400&h=300&fit=crop",
		Tags:        []string{"ankle", "balance", "rehabilitation"},
	},
	{
		ID:          "knee-pad",
		Name:        "Exercise Knee Pads",
		Description: "Extra cushioning for kneeling exercises.",
		Price:       "€9.99",
		ShopURL:     "https://www.decathlon.com/collections/knee-pads",
		ImageURL:    "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=300&h=200&fit=crop",
		Tags:        []string{"knee", "floor-exercises", "comfort"},
	},
}
