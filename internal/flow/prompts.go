package flow

const summarizePrompt = `You are an expert meeting analyst. Based on the transcript below, write a DETAILED meeting summary.

Requirements:
- Start with a one-sentence overview of what the meeting was about
- Cover ALL major topics in the order they were discussed
- Call out disagreements, open questions and risks explicitly
- Keep who-said-what only where attribution matters for a decision
- Use markdown: headings, bullet points, bold for key terms
- End with a "Key takeaways" section

Return JSON with a single "summary" field containing the markdown.

Transcript:
---
%s
---`

const minutesPrompt = `You are a professional minute taker. Produce structured Minutes of Meeting from the transcript below.

Requirements:
- "title": one line naming the meeting's purpose
- "date": only if the transcript states one, ISO format
- "attendees": every distinct speaker plus anyone clearly present
- "agenda": the topics that were planned or announced, if any
- "discussion": one entry per topic actually covered; "summary" must capture the substance, not just that the topic came up
- "decisions": only decisions that were actually made, not proposals

Do not invent attendees, dates or decisions that are not in the transcript.

Transcript:
---
%s
---`

const actionItemsPrompt = `Extract every action item from the meeting transcript below.

Requirements:
- "task": a self-contained description understandable without the transcript
- "owner": the person who took or was assigned the task; use "unassigned" if nobody owns it
- "deadline": exactly as agreed in the meeting; empty string if none
- "priority": "high", "medium" or "low" judged from the discussion
- Include implicit commitments ("I'll take care of X") as well as explicit assignments
- Do not invent tasks that were not discussed

Transcript:
---
%s
---`

const transcribePrompt = `Transcribe the attached meeting recording.

Requirements:
- Write one line per utterance in the form "Speaker: text"
- Label speakers "Speaker 1", "Speaker 2", ... consistently, or use real names if they introduce themselves
- Transcribe verbatim; do not summarize or clean up grammar
- Mark inaudible passages as [inaudible]`
