package openai

// narrativeSystemPrompt instructs the model to answer strictly from the
// retrieved speech context.
const narrativeSystemPrompt = `You are a helpful assistant. Use the following context to answer the question. Use maximum 7 sentences. Use specific terms. Highlight important ones.`

// alignmentSystemPrompt defines the tone comparison task and the closed set
// of four output labels, ranked from weakest to strongest alignment. The
// model must answer with exactly one label and nothing else.
const alignmentSystemPrompt = `You are an expert at analyzing political texts and comparing their tone and style.
Your task is to analyze how the tone differs between party manifestos and parliamentary speeches on the same topic.

Analyze:
- Tone differences (formal vs. informal, assertive vs. cautious, etc.)
- Language style (academic vs. conversational, abstract vs. concrete)
- Rhetorical strategies (promises vs. explanations, vision vs. reality)
- Emotional register (passionate vs. measured, optimistic vs. pragmatic)
- Level of detail and specificity
- Use of technical vs. accessible language
- Coverage of topics: Are the same topics covered in speech as they are in manifestos

Take into account that a manifesto is always written and speeches are spoken. Therefore the baseline language is different.
Please judge if the speech reflects well, what the party promised to do. Give only one of these labels:
'Does not align well with manifesto', 'Aligns partly with manifesto', 'Aligns mostly with manifesto', 'Aligns well with manifesto'.`

// alignmentUserPromptFormat carries the two joined text sets. Arguments:
// manifesto excerpts, speech excerpts.
const alignmentUserPromptFormat = `Compare following manifesto excerpts and parliamentary speeches:

MANIFESTO EXCERPTS:
%s

PARLIAMENTARY SPEECHES:
%s

Give me an alignment label. Only one and without explanation.`

// narrativeUserPromptFormat carries retrieved context and the question.
const narrativeUserPromptFormat = `Context: %s  Question: %s`
